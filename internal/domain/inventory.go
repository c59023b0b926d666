package domain

// ItemCategory selects one of the three stackable inventory collections.
type ItemCategory string

const (
	CategoryWeapons ItemCategory = "weapons"
	CategoryArmors  ItemCategory = "armors"
	CategoryPotions ItemCategory = "potions"
)

// ItemStack is one stackable inventory entry. Entries always have Quantity >= 1;
// a stack decremented to 0 is removed from its collection, never retained.
type ItemStack struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Damage   int    `json:"damage,omitempty"`
	Defense  int    `json:"defense,omitempty"`
	Heal     int    `json:"heal,omitempty"`
	Energy   int    `json:"energy,omitempty"`
	Effect   string `json:"effect,omitempty"`
	Kind     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// Inventory holds the three stackable item collections of one GameData.
type Inventory struct {
	Weapons []ItemStack `json:"weapons"`
	Armors  []ItemStack `json:"armors"`
	Potions []ItemStack `json:"potions"`
}

// Stacks returns the collection for a category. Unknown categories return nil;
// callers validate the category before mutation.
func (inv *Inventory) Stacks(cat ItemCategory) *[]ItemStack {
	switch cat {
	case CategoryWeapons:
		return &inv.Weapons
	case CategoryArmors:
		return &inv.Armors
	case CategoryPotions:
		return &inv.Potions
	default:
		return nil
	}
}

// FindStack returns the index of the stack with the given item id, or -1.
func FindStack(stacks []ItemStack, itemID int) int {
	for i := range stacks {
		if stacks[i].ID == itemID {
			return i
		}
	}
	return -1
}

// AddStack increments an existing stack or appends a new one from the given
// template. Quantity is taken from qty, not from the template.
func AddStack(stacks []ItemStack, item ItemStack, qty int) []ItemStack {
	if i := FindStack(stacks, item.ID); i != -1 {
		stacks[i].Quantity += qty
		return stacks
	}
	item.Quantity = qty
	return append(stacks, item)
}

// RemoveFromStack decrements a stack and deletes it when it reaches zero.
func RemoveFromStack(stacks []ItemStack, idx, qty int) []ItemStack {
	if stacks[idx].Quantity <= qty {
		return append(stacks[:idx], stacks[idx+1:]...)
	}
	stacks[idx].Quantity -= qty
	return stacks
}
