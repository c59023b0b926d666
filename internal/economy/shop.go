package economy

import (
	"fmt"

	"github.com/virelli/ArenaForge_Go/internal/catalog"
	"github.com/virelli/ArenaForge_Go/internal/domain"
)

// BuyShopItem purchases one unit of a shop listing into the inventory,
// stacking onto an existing entry when the item is already owned.
//
// Preconditions: the category is one of the three item collections, the item
// exists in that category, gold covers the cost.
func BuyShopItem(acc *domain.Account, cat domain.ItemCategory, itemID int) (*catalog.ShopItem, error) {
	stacks := acc.Game.Inventory.Stacks(cat)
	if stacks == nil {
		return nil, fmt.Errorf("%w: unknown item category %q", domain.ErrInvalidInput, cat)
	}
	item, ok := catalog.FindShopItem(cat, itemID)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%d", domain.ErrItemNotFound, cat, itemID)
	}
	if acc.Gold < item.Cost {
		return nil, fmt.Errorf("%w: need %d", domain.ErrInsufficientGold, item.Cost)
	}

	acc.Gold -= item.Cost
	*stacks = domain.AddStack(*stacks, item.Stack(), 1)
	return &item, nil
}

// EquipSlot names an equipment slot for EquipItem.
type EquipSlot string

const (
	SlotWeapon EquipSlot = "weapon"
	SlotArmor  EquipSlot = "armor"
)

// EquipItem moves an inventory item into a gladiator's equipment slot.
//
// The currently equipped item is returned to the inventory as a restored
// stack unless it is the default starter gear. The newly equipped item is a
// copied snapshot; its inventory stack is decremented and removed at zero.
func EquipItem(acc *domain.Account, gladiatorID int, slot EquipSlot, itemID int) (*domain.Gladiator, error) {
	g := acc.Game.FindGladiator(gladiatorID)
	if g == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrGladiatorNotFound, gladiatorID)
	}

	var stacks *[]domain.ItemStack
	var equipped *domain.EquippedItem
	switch slot {
	case SlotWeapon:
		stacks = &acc.Game.Inventory.Weapons
		equipped = &g.Equipment.Weapon
	case SlotArmor:
		stacks = &acc.Game.Inventory.Armors
		equipped = &g.Equipment.Armor
	default:
		return nil, fmt.Errorf("%w: unknown equipment slot %q", domain.ErrInvalidInput, slot)
	}

	idx := domain.FindStack(*stacks, itemID)
	if idx == -1 || (*stacks)[idx].Quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrNotInInventory, itemID)
	}
	item := (*stacks)[idx]

	// Starter gear is a free default, not a tradable item; it is discarded
	// rather than restocked.
	if equipped.ID != catalog.StarterItemID {
		*stacks = domain.AddStack(*stacks, domain.ItemStack{
			ID:      equipped.ID,
			Name:    equipped.Name,
			Damage:  equipped.Damage,
			Defense: equipped.Defense,
			Kind:    equipped.Kind,
		}, 1)
		// AddStack may have shifted the target stack.
		idx = domain.FindStack(*stacks, itemID)
	}

	*equipped = domain.EquippedItem{
		ID:      item.ID,
		Name:    item.Name,
		Damage:  item.Damage,
		Defense: item.Defense,
		Kind:    item.Kind,
	}
	*stacks = domain.RemoveFromStack(*stacks, idx, 1)
	return g, nil
}
