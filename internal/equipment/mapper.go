package equipment

import "strings"

// apiEquipment mirrors the REST payload for one listing.
type apiEquipment struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	RentalPeriod string  `json:"rentalPeriod"`
	Category     string  `json:"category"`
	Condition    string  `json:"condition"`
	Availability string  `json:"availability"`
	Location     string  `json:"location"`
	Image        string  `json:"image"`
	OwnerID      string  `json:"userId"`
}

const placeholderImage = "/api/placeholder/100/100"

func mapEquipment(raw apiEquipment, assetBase string) Equipment {
	period := RentalPeriod(raw.RentalPeriod)
	if period != PeriodMonth {
		period = PeriodDay
	}

	return Equipment{
		ID:           raw.ID,
		Name:         raw.Name,
		Description:  raw.Description,
		Price:        raw.Price,
		RentalPeriod: period,
		Category:     raw.Category,
		Condition:    raw.Condition,
		Availability: raw.Availability,
		Location:     raw.Location,
		ImageURL:     ResolveImageURL(raw.Image, assetBase),
		OwnerID:      raw.OwnerID,
	}
}

// ResolveImageURL rehydrates the relative image path stored by the API
// into an absolute URL, falling back to a placeholder.
func ResolveImageURL(image, assetBase string) string {
	if image == "" {
		return placeholderImage
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	return strings.TrimRight(assetBase, "/") + "/" + strings.TrimLeft(image, "/")
}
