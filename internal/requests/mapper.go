package requests

import (
	"encoding/json"
	"time"
)

// equipmentRef tolerates both the populated object and the bare id the
// API may return for an order line's equipment.
type equipmentRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

func (e *equipmentRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		e.ID = id
		return nil
	}
	type alias equipmentRef
	return json.Unmarshal(data, (*alias)(e))
}

type apiUserRef struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}

type apiPersonalInfo struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Country      string `json:"country"`
	PostalCode   string `json:"postalCode"`
	CIN          string `json:"cin"`
	Profession   string `json:"profession"`
	Organization string `json:"organization"`
}

type apiOrderItem struct {
	EquipmentID  *equipmentRef `json:"equipmentId"`
	StartDate    *time.Time    `json:"startDate"`
	EndDate      *time.Time    `json:"endDate"`
	RentalPeriod string        `json:"rentalPeriod"`
}

type apiOrder struct {
	ID           string           `json:"_id"`
	Status       string           `json:"status"`
	TotalAmount  float64          `json:"totalAmount"`
	Message      string           `json:"message"`
	CreatedAt    *time.Time       `json:"createdAt"`
	CINProof     string           `json:"cinProof"`
	PersonalInfo *apiPersonalInfo `json:"personalInfo"`
	UserID       *apiUserRef      `json:"userId"`
	Items        []apiOrderItem   `json:"items"`
}

const defaultMessage = "Aucun message"

// mapOrder projects one owner-side order into the read model. It returns
// nil when the equipment reference is entirely absent; such orders are
// dropped rather than shown malformed.
func mapOrder(o apiOrder, now time.Time) *RentalRequest {
	var first *apiOrderItem
	if len(o.Items) > 0 {
		first = &o.Items[0]
	}
	if first == nil || first.EquipmentID == nil {
		return nil
	}
	eq := first.EquipmentID

	info := apiPersonalInfo{}
	if o.PersonalInfo != nil {
		info = *o.PersonalInfo
	}

	req := &RentalRequest{
		ID:             o.ID,
		EquipmentID:    eq.ID,
		EquipmentName:  eq.Name,
		EquipmentPhoto: eq.Image,
		Status:         Status(o.Status),
		RentalPeriod:   first.RentalPeriod,
		TotalPrice:     o.TotalAmount,
		Message:        o.Message,
		StartDate:      now,
		EndDate:        now,
		CreatedAt:      now,
		PersonalInfo: PersonalInfo{
			FirstName:    info.FirstName,
			LastName:     info.LastName,
			Email:        info.Email,
			Phone:        info.Phone,
			Address:      info.Address,
			City:         info.City,
			Country:      info.Country,
			PostalCode:   info.PostalCode,
			CIN:          info.CIN,
			CINProof:     o.CINProof,
			Profession:   info.Profession,
			Organization: info.Organization,
		},
	}

	if req.EquipmentName == "" {
		req.EquipmentName = "Unknown Equipment"
	}
	if req.Status == "" {
		req.Status = StatusPending
	}
	if req.RentalPeriod == "" {
		req.RentalPeriod = "day"
	}
	if req.Message == "" {
		req.Message = defaultMessage
	}
	if first.StartDate != nil {
		req.StartDate = *first.StartDate
	}
	if first.EndDate != nil {
		req.EndDate = *first.EndDate
	}
	if o.CreatedAt != nil {
		req.CreatedAt = *o.CreatedAt
	}

	if o.UserID != nil {
		req.RequesterID = o.UserID.ID
		// The account email is more reliable than what was typed into
		// the checkout form.
		if o.UserID.Email != "" {
			req.PersonalInfo.Email = o.UserID.Email
		}
	}
	req.RequesterName = requesterName(info)

	return req
}

func requesterName(info apiPersonalInfo) string {
	if info.FirstName != "" && info.LastName != "" {
		return info.FirstName + " " + info.LastName
	}
	return "Utilisateur"
}
