package equipment

// RentalPeriod is the billing granularity declared on a listing.
type RentalPeriod string

const (
	PeriodDay   RentalPeriod = "day"
	PeriodMonth RentalPeriod = "month"
)

type Equipment struct {
	ID           string
	Name         string
	Description  string
	Price        float64
	RentalPeriod RentalPeriod
	Category     string
	Condition    string
	Availability string
	Location     string
	ImageURL     string
	OwnerID      string
}

// Input is the owner-supplied listing form, submitted as multipart
// together with the image file.
type Input struct {
	Name         string
	Category     string
	Description  string
	Price        float64
	RentalPeriod RentalPeriod
	Condition    string
	Availability string
	Location     string
}
