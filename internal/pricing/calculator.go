package pricing

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"medishare-client/internal/cart"
)

// Billing is month-based regardless of the listing's declared period: a
// month is 30 days and any started month is charged in full.
const daysPerMonth = 30

// depositRate is the flat security-deposit policy.
var depositRate = decimal.NewFromFloat(0.7)

var (
	ErrEndBeforeStart = errors.New("end date precedes start date")
	ErrStartInPast    = errors.New("start date precedes today")
)

// DateRange is the per-item rental window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange validates the invariants enforced by the date inputs:
// end never precedes start, start never precedes today.
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateDay(start)
	end = truncateDay(end)

	if end.Before(start) {
		return DateRange{}, ErrEndBeforeStart
	}
	if start.Before(truncateDay(time.Now())) {
		return DateRange{}, ErrStartInPast
	}
	return DateRange{Start: start, End: end}, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Days returns the absolute length of the range in days.
func (r DateRange) Days() int {
	diff := r.End.Sub(r.Start)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}

// DurationMonths rounds the range up to whole billing months. A same-day
// range still bills one month.
func DurationMonths(r DateRange) int {
	days := r.Days()
	if days == 0 {
		return 1
	}
	months := days / daysPerMonth
	if days%daysPerMonth != 0 {
		months++
	}
	return months
}

// ItemRentalCost is unitPrice x quantity x months.
func ItemRentalCost(item cart.Item, r DateRange) decimal.Decimal {
	base := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
	return base.Mul(decimal.NewFromInt(int64(DurationMonths(r))))
}

// ItemDeposit is 70% of a single billing unit (unitPrice x quantity).
// It does not scale with duration.
func ItemDeposit(item cart.Item) decimal.Decimal {
	base := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
	return base.Mul(depositRate)
}

// ItemTotal is the duration-scaled rental cost plus the deposit.
func ItemTotal(item cart.Item, r DateRange) decimal.Decimal {
	return ItemRentalCost(item, r).Add(ItemDeposit(item))
}

// CartTotal sums rental costs over all items. Items without a range are
// billed one month, matching the pre-selection display.
func CartTotal(items []cart.Item, ranges map[string]DateRange) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		r, ok := ranges[item.EquipmentID]
		if !ok {
			base := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
			total = total.Add(base)
			continue
		}
		total = total.Add(ItemRentalCost(item, r))
	}
	return total
}

// CartDeposit is 70% of the cart rental total.
func CartDeposit(total decimal.Decimal) decimal.Decimal {
	return total.Mul(depositRate)
}
