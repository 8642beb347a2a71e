package checkout

import (
	"medishare-client/internal/cart"
	"medishare-client/internal/pricing"
)

type PaymentMethod string

const (
	PaymentBank     PaymentMethod = "bank"
	PaymentWafacash PaymentMethod = "wafacash"
	PaymentCashPlus PaymentMethod = "cashplus"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentBank, PaymentWafacash, PaymentCashPlus:
		return true
	}
	return false
}

// PersonalInfo is the renter identity block submitted with the order.
// All seven fields are required.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	CIN       string `json:"cin"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Phone     string `json:"phone"`
}

// Attachment is an uploaded file forwarded to the API unmodified.
type Attachment struct {
	Filename string
	Content  []byte
}

func (a *Attachment) Size() int64 { return int64(len(a.Content)) }

// Form is everything the renter edits before confirming the order.
type Form struct {
	Items         []cart.Item
	Ranges        map[string]pricing.DateRange
	PersonalInfo  PersonalInfo
	PaymentMethod PaymentMethod
	CINFile       *Attachment
	Message       string
	MessageFile   *Attachment
}

// orderLine is one cart item as submitted. rentalDays actually carries
// the month count and rentalPeriod is fixed to month: the backend bills
// monthly whatever the listing declared.
type orderLine struct {
	EquipmentID  string  `json:"equipmentId"`
	Quantity     int     `json:"quantity"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	RentalDays   int     `json:"rentalDays"`
	RentalPeriod string  `json:"rentalPeriod"`
	Price        float64 `json:"price"`
}

type orderData struct {
	Items         []orderLine   `json:"items"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TotalAmount   float64       `json:"totalAmount"`
	Deposit       float64       `json:"deposit"`
	PersonalInfo  PersonalInfo  `json:"personalInfo"`
	Message       string        `json:"message"`
}

// createdOrder is the slice element the order endpoint returns.
type createdOrder struct {
	ID      string `json:"_id"`
	OwnerID string `json:"ownerId"`
}
