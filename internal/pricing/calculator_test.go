package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medishare-client/internal/cart"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func rangeOf(start, end string) DateRange {
	return DateRange{Start: day(start), End: day(end)}
}

func TestDurationMonths(t *testing.T) {
	t.Run("same day bills one month", func(t *testing.T) {
		assert.Equal(t, 1, DurationMonths(rangeOf("2024-01-01", "2024-01-01")))
	})

	t.Run("partial month rounds up", func(t *testing.T) {
		assert.Equal(t, 1, DurationMonths(rangeOf("2024-01-01", "2024-01-15")))
	})

	t.Run("exactly thirty days is one month", func(t *testing.T) {
		assert.Equal(t, 1, DurationMonths(rangeOf("2024-01-01", "2024-01-31")))
	})

	t.Run("forty five days round up to two months", func(t *testing.T) {
		assert.Equal(t, 2, DurationMonths(rangeOf("2024-01-01", "2024-02-15")))
	})

	t.Run("six months", func(t *testing.T) {
		assert.Equal(t, 6, DurationMonths(rangeOf("2024-01-01", "2024-06-28")))
	})
}

func TestItemDeposit(t *testing.T) {
	item := cart.Item{EquipmentID: "E1", UnitPrice: 500, Quantity: 1}

	t.Run("deposit is seventy percent of unit price", func(t *testing.T) {
		assert.True(t, decimal.NewFromInt(350).Equal(ItemDeposit(item)))
	})

	t.Run("deposit ignores duration", func(t *testing.T) {
		short := rangeOf("2024-01-01", "2024-01-15")
		long := rangeOf("2024-01-01", "2024-06-28")

		assert.Equal(t, 1, DurationMonths(short))
		assert.Equal(t, 6, DurationMonths(long))
		assert.True(t, ItemDeposit(item).Equal(decimal.NewFromInt(350)))
		// The rental part does scale, the deposit never does.
		assert.True(t, ItemRentalCost(item, long).GreaterThan(ItemRentalCost(item, short)))
	})

	t.Run("deposit scales with quantity", func(t *testing.T) {
		two := cart.Item{EquipmentID: "E2", UnitPrice: 100, Quantity: 2}
		assert.True(t, decimal.NewFromInt(140).Equal(ItemDeposit(two)))
	})
}

func TestItemTotals(t *testing.T) {
	item := cart.Item{EquipmentID: "E1", UnitPrice: 200, Quantity: 1}
	r := rangeOf("2024-03-01", "2024-03-20")

	require.Equal(t, 1, DurationMonths(r))
	assert.True(t, decimal.NewFromInt(200).Equal(ItemRentalCost(item, r)))
	assert.True(t, decimal.NewFromInt(140).Equal(ItemDeposit(item)))
	assert.True(t, decimal.NewFromInt(340).Equal(ItemTotal(item, r)))
}

func TestCartTotals(t *testing.T) {
	items := []cart.Item{
		{EquipmentID: "E1", UnitPrice: 200, Quantity: 1},
		{EquipmentID: "E2", UnitPrice: 100, Quantity: 1},
	}
	ranges := map[string]DateRange{
		"E1": rangeOf("2024-03-01", "2024-03-20"), // 1 month
		"E2": rangeOf("2024-03-01", "2024-04-15"), // 2 months
	}

	total := CartTotal(items, ranges)
	assert.True(t, decimal.NewFromInt(400).Equal(total), "200 + 100x2 = %s", total)
	assert.True(t, decimal.NewFromInt(280).Equal(CartDeposit(total)))

	t.Run("item without range bills one month", func(t *testing.T) {
		total := CartTotal(items, map[string]DateRange{})
		assert.True(t, decimal.NewFromInt(300).Equal(total))
	})
}

func TestNewDateRange(t *testing.T) {
	today := time.Now()
	tomorrow := today.AddDate(0, 0, 1)

	t.Run("valid", func(t *testing.T) {
		r, err := NewDateRange(today, tomorrow)
		require.NoError(t, err)
		assert.Equal(t, 1, r.Days())
	})

	t.Run("end before start rejected", func(t *testing.T) {
		_, err := NewDateRange(tomorrow, today)
		assert.ErrorIs(t, err, ErrEndBeforeStart)
	})

	t.Run("start in the past rejected", func(t *testing.T) {
		_, err := NewDateRange(today.AddDate(0, 0, -2), tomorrow)
		assert.ErrorIs(t, err, ErrStartInPast)
	})

	t.Run("same day allowed", func(t *testing.T) {
		_, err := NewDateRange(today, today)
		assert.NoError(t, err)
	})
}
