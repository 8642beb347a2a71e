package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"medishare-client/internal/equipment"
)

// MockStore is a mock implementation of the Store interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Items() ([]Item, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Item), args.Error(1)
}

func (m *MockStore) Add(item Item) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockStore) Remove(equipmentID string) error {
	args := m.Called(equipmentID)
	return args.Error(0)
}

func (m *MockStore) UpdateQuantity(equipmentID string, quantity int) error {
	args := m.Called(equipmentID, quantity)
	return args.Error(0)
}

func (m *MockStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockStore) Subscribe(fn func(items []Item)) (cancel func()) {
	m.Called()
	return func() {}
}

func TestServiceAddEquipment(t *testing.T) {
	eq := equipment.Equipment{
		ID:           "E1",
		Name:         "Hospital Bed",
		Price:        300,
		RentalPeriod: equipment.PeriodMonth,
		ImageURL:     "https://assets.example/uploads/bed.png",
		OwnerID:      "U7",
		Description:  "Electric, adjustable",
		Category:     "mobility",
		Condition:    "good",
	}

	store := new(MockStore)
	store.On("Add", mock.MatchedBy(func(item Item) bool {
		return item.EquipmentID == "E1" &&
			item.Name == "Hospital Bed" &&
			item.UnitPrice == 300 &&
			item.RentalPeriod == "month" &&
			item.Quantity == 1 &&
			item.OwnerID == "U7" &&
			item.ImageURL == "https://assets.example/uploads/bed.png"
	})).Return(nil)

	svc := NewService(store)
	require.NoError(t, svc.AddEquipment(eq))
	store.AssertExpectations(t)
}

func TestServiceAddDuplicateSurfacesWarning(t *testing.T) {
	store := new(MockStore)
	store.On("Add", mock.Anything).Return(ErrAlreadyInCart)

	svc := NewService(store)
	err := svc.AddEquipment(equipment.Equipment{ID: "E1"})
	assert.ErrorIs(t, err, ErrAlreadyInCart)
}

func TestServiceCount(t *testing.T) {
	store := new(MockStore)
	store.On("Items").Return([]Item{{EquipmentID: "E1"}, {EquipmentID: "E2"}}, nil)

	svc := NewService(store)
	assert.Equal(t, 2, svc.Count())

	t.Run("zero on store failure", func(t *testing.T) {
		broken := new(MockStore)
		broken.On("Items").Return(nil, ErrFailedLoadCart)
		assert.Equal(t, 0, NewService(broken).Count())
	})
}
