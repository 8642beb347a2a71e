package cart

import (
	"medishare-client/internal/equipment"
)

// Service builds cart items from equipment records and delegates
// persistence to the injected store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Store() Store { return s.store }

// AddEquipment puts a listing in the cart with default rental metadata
// copied from the record. Duplicates surface ErrAlreadyInCart so the
// caller can show a non-blocking warning.
func (s *Service) AddEquipment(eq equipment.Equipment) error {
	return s.store.Add(Item{
		EquipmentID:  eq.ID,
		Name:         eq.Name,
		UnitPrice:    eq.Price,
		RentalPeriod: string(eq.RentalPeriod),
		Quantity:     1,
		ImageURL:     eq.ImageURL,
		OwnerID:      eq.OwnerID,
		Description:  eq.Description,
		Category:     eq.Category,
		Condition:    eq.Condition,
	})
}

func (s *Service) Items() ([]Item, error) { return s.store.Items() }

func (s *Service) Remove(equipmentID string) error { return s.store.Remove(equipmentID) }

func (s *Service) UpdateQuantity(equipmentID string, qty int) error {
	return s.store.UpdateQuantity(equipmentID, qty)
}

// Count backs the cart badge.
func (s *Service) Count() int {
	items, err := s.store.Items()
	if err != nil {
		return 0
	}
	return len(items)
}
