package comics

import (
	"slices"
	"strings"
)

// Inventory owns the three compartments a comic can live in. A code appears
// in at most one compartment at any moment. Available keeps its load order,
// reserved and sold keep insertion order.
type Inventory struct {
	available []Comic
	reserved  []Comic
	sold      []Comic
}

// NewInventory returns an inventory whose available compartment holds the
// given comics in order. The other compartments start empty.
func NewInventory(available []Comic) *Inventory {
	return &Inventory{available: slices.Clone(available)}
}

// Available returns a snapshot of the available compartment.
func (inv *Inventory) Available() []Comic { return slices.Clone(inv.available) }

// Reserved returns a snapshot of the reserved compartment in insertion order.
func (inv *Inventory) Reserved() []Comic { return slices.Clone(inv.reserved) }

// Sold returns a snapshot of the sold compartment in insertion order.
func (inv *Inventory) Sold() []Comic { return slices.Clone(inv.sold) }

// ReservedByTitle returns the reserved comics sorted by title. The underlying
// insertion order is untouched.
func (inv *Inventory) ReservedByTitle() []Comic {
	view := slices.Clone(inv.reserved)
	slices.SortStableFunc(view, func(a, b Comic) int {
		return strings.Compare(a.Title, b.Title)
	})
	return view
}

// Find looks the code up across all three compartments.
func (inv *Inventory) Find(code string) (Comic, error) {
	for _, compartment := range [][]Comic{inv.available, inv.reserved, inv.sold} {
		if i := indexByCode(compartment, code); i >= 0 {
			return compartment[i], nil
		}
	}
	return Comic{}, ErrNotFound
}

// Add appends c to the available compartment. The code must not exist in any
// compartment.
func (inv *Inventory) Add(c Comic) error {
	if inv.holds(c.Code) {
		return ErrDuplicateCode
	}
	inv.available = append(inv.available, c)
	return nil
}

// RemoveAvailable deletes the comic with the given code from the available
// compartment. A code living only in reserved or sold is ErrNotFound too:
// those records can no longer be withdrawn.
func (inv *Inventory) RemoveAvailable(code string) (Comic, error) {
	i := indexByCode(inv.available, code)
	if i < 0 {
		return Comic{}, ErrNotFound
	}
	removed := inv.available[i]
	inv.available = slices.Delete(inv.available, i, i+1)
	return removed, nil
}

// Reserve moves the comic with the given code from available to reserved.
func (inv *Inventory) Reserve(code string) (Comic, error) {
	if indexByCode(inv.reserved, code) >= 0 {
		return Comic{}, ErrAlreadyReserved
	}
	i := indexByCode(inv.available, code)
	if i < 0 {
		return Comic{}, ErrNotFound
	}
	c := inv.available[i]
	inv.available = slices.Delete(inv.available, i, i+1)
	inv.reserved = append(inv.reserved, c)
	return c, nil
}

// PurchaseReserved moves every reserved comic into sold and returns the sum
// of their prices. The move is all-or-nothing: on any refusal the
// compartments are left exactly as they were.
func (inv *Inventory) PurchaseReserved() (int, error) {
	if len(inv.reserved) == 0 {
		return 0, ErrNothingReserved
	}

	snapshot := slices.Clone(inv.reserved)
	soldBefore := slices.Clone(inv.sold)

	total := 0
	for _, c := range snapshot {
		if indexByCode(inv.sold, c.Code) >= 0 {
			inv.sold = soldBefore
			return 0, ErrDuplicateCode
		}
		inv.sold = append(inv.sold, c)
		total += c.Price
	}
	inv.reserved = inv.reserved[:0]
	return total, nil
}

// holds reports whether any compartment contains the code.
func (inv *Inventory) holds(code string) bool {
	return indexByCode(inv.available, code) >= 0 ||
		indexByCode(inv.reserved, code) >= 0 ||
		indexByCode(inv.sold, code) >= 0
}

func indexByCode(comics []Comic, code string) int {
	return slices.IndexFunc(comics, func(c Comic) bool {
		return CodeEqual(c.Code, code)
	})
}
