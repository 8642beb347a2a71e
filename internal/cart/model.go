package cart

// Item is one piece of equipment selected for rental. The serialized
// shape matches the list kept under the fixed cart storage key.
type Item struct {
	EquipmentID  string  `json:"equipmentId"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unitPrice"`
	RentalPeriod string  `json:"rentalPeriod"`
	Quantity     int     `json:"quantity"`
	ImageURL     string  `json:"imageUrl"`
	OwnerID      string  `json:"ownerId,omitempty"`
	Description  string  `json:"description,omitempty"`
	Category     string  `json:"category,omitempty"`
	Condition    string  `json:"condition,omitempty"`
}
