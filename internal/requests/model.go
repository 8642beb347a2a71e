package requests

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// PersonalInfo mirrors the renter identity captured at checkout.
type PersonalInfo struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Address      string
	City         string
	Country      string
	PostalCode   string
	CIN          string
	CINProof     string
	Profession   string
	Organization string
}

// RentalRequest is one incoming order as seen by the equipment owner.
// Once approved or rejected it is immutable on this side.
type RentalRequest struct {
	ID             string
	EquipmentID    string
	EquipmentName  string
	EquipmentPhoto string
	RequesterID    string
	RequesterName  string
	Status         Status
	StartDate      time.Time
	EndDate        time.Time
	RentalPeriod   string
	TotalPrice     float64
	Message        string
	CreatedAt      time.Time
	PersonalInfo   PersonalInfo
}

// Actionable reports whether approve/reject may still be offered.
func (r *RentalRequest) Actionable() bool {
	return r.Status == StatusPending
}

// DurationDays is the rental window length in whole days, rounded up.
func (r *RentalRequest) DurationDays() int {
	diff := r.EndDate.Sub(r.StartDate)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff.Hours() / 24)
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}
