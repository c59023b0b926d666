package catalog

import "github.com/virelli/ArenaForge_Go/internal/domain"

// ShopItem is one purchasable listing. Damage/Defense/Heal/Energy are set
// according to the category; unused fields stay zero.
type ShopItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Damage      int    `json:"damage,omitempty"`
	Defense     int    `json:"defense,omitempty"`
	Heal        int    `json:"heal,omitempty"`
	Energy      int    `json:"energy,omitempty"`
	Effect      string `json:"effect,omitempty"`
	Cost        int    `json:"cost"`
	Kind        string `json:"type"`
	Description string `json:"description"`
}

// GladiatorListing advertises a recruitable archetype in the shop.
type GladiatorListing struct {
	Type        domain.Archetype `json:"type"`
	Name        string           `json:"name"`
	Cost        int              `json:"cost"`
	Description string           `json:"description"`
}

// Shop is the full static shop catalog.
type Shop struct {
	Weapons    []ShopItem         `json:"weapons"`
	Armors     []ShopItem         `json:"armors"`
	Potions    []ShopItem         `json:"potions"`
	Gladiators []GladiatorListing `json:"gladiators"`
}

var shopWeapons = []ShopItem{
	{ID: 2, Name: "Iron Sword", Damage: 10, Cost: 200, Kind: "sword", Description: "Dependable iron blade"},
	{ID: 3, Name: "Steel Sword", Damage: 15, Cost: 500, Kind: "sword", Description: "A keen steel edge"},
	{ID: 4, Name: "Long Spear", Damage: 12, Cost: 300, Kind: "spear", Description: "Keeps enemies at reach"},
	{ID: 5, Name: "Battle Axe", Damage: 18, Cost: 800, Kind: "axe", Description: "A crushing blow"},
	{ID: 6, Name: "Gladius", Damage: 16, Cost: 600, Kind: "sword", Description: "The classic Roman short sword"},
}

var shopArmors = []ShopItem{
	{ID: 2, Name: "Chainmail", Defense: 8, Cost: 300, Kind: "medium", Description: "Flexible metal protection"},
	{ID: 3, Name: "Plate Armor", Defense: 15, Cost: 800, Kind: "heavy", Description: "Heavy but dependable"},
	{ID: 4, Name: "Scale Armor", Defense: 12, Cost: 500, Kind: "medium", Description: "Overlapping metal scales"},
	{ID: 5, Name: "Greaves", Defense: 5, Cost: 200, Kind: "light", Description: "Leg protection"},
}

var shopPotions = []ShopItem{
	{ID: 3, Name: "Medium Health Potion", Heal: 60, Cost: 50, Kind: "heal", Description: "Restores 60 HP"},
	{ID: 4, Name: "Large Health Potion", Heal: 100, Cost: 100, Kind: "heal", Description: "Restores 100 HP"},
	{ID: 5, Name: "Strength Potion", Effect: "strength", Cost: 150, Kind: "buff", Description: "+5 strength for 3 fights"},
	{ID: 6, Name: "Energy Potion", Energy: 30, Cost: 80, Kind: "energy", Description: "Restores 30 energy"},
}

var shopGladiators = []GladiatorListing{
	{Type: domain.ArchetypeMurmillo, Name: "Murmillo", Cost: 500, Description: "Sword and rectangular shield"},
	{Type: domain.ArchetypeThraex, Name: "Thraex", Cost: 600, Description: "Curved blade, tall shield"},
	{Type: domain.ArchetypeRetiarius, Name: "Retiarius", Cost: 550, Description: "Trident and net"},
	{Type: domain.ArchetypeSecutor, Name: "Secutor", Cost: 700, Description: "Smooth helmet, short sword"},
}

// ShopCatalog returns the full static shop.
func ShopCatalog() Shop {
	return Shop{
		Weapons:    shopWeapons,
		Armors:     shopArmors,
		Potions:    shopPotions,
		Gladiators: shopGladiators,
	}
}

// ShopItemsFor returns the listings of one category, or nil for the
// gladiator pseudo-category and unknown tags.
func ShopItemsFor(cat domain.ItemCategory) []ShopItem {
	switch cat {
	case domain.CategoryWeapons:
		return shopWeapons
	case domain.CategoryArmors:
		return shopArmors
	case domain.CategoryPotions:
		return shopPotions
	default:
		return nil
	}
}

// FindShopItem looks up a listing by category and id.
func FindShopItem(cat domain.ItemCategory, itemID int) (ShopItem, bool) {
	for _, item := range ShopItemsFor(cat) {
		if item.ID == itemID {
			return item, true
		}
	}
	return ShopItem{}, false
}

// Stack converts a listing into an inventory stack template.
func (s ShopItem) Stack() domain.ItemStack {
	return domain.ItemStack{
		ID:      s.ID,
		Name:    s.Name,
		Damage:  s.Damage,
		Defense: s.Defense,
		Heal:    s.Heal,
		Energy:  s.Energy,
		Effect:  s.Effect,
		Kind:    s.Kind,
	}
}

// StarterInventory is the inventory every new account begins with.
func StarterInventory() domain.Inventory {
	return domain.Inventory{
		Weapons: []domain.ItemStack{
			{ID: 1, Name: "Wooden Sword", Damage: 5, Kind: "sword", Quantity: 1},
		},
		Armors: []domain.ItemStack{
			{ID: 1, Name: "Leather Armor", Defense: 3, Kind: "light", Quantity: 1},
		},
		Potions: []domain.ItemStack{
			{ID: 1, Name: "Minor Health Potion", Heal: 30, Kind: "heal", Quantity: 3},
			{ID: 2, Name: "Minor Energy Potion", Energy: 20, Kind: "energy", Quantity: 2},
		},
	}
}
