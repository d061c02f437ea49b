package billing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// DegressiveRateTier sets the contribution of every rental day starting at FromDay,
// until the next tier takes over.
type DegressiveRateTier struct {
	FromDay int             `json:"from_day"`
	IsRate  bool            `json:"is_rate"`
	Value   decimal.Decimal `json:"value"`
}

// contribution returns what one day covered by the tier adds to the multiplier.
func (t DegressiveRateTier) contribution() decimal.Decimal {
	if t.IsRate {
		return t.Value.Div(hundred)
	}
	return t.Value
}

// DegressiveRateCurve turns a rental duration into the multiplier applied to daily amounts.
//
// Days that no tier covers count as one full day each, so a curve without tiers is
// not degressive at all. Tiers are kept sorted by FromDay.
type DegressiveRateCurve struct {
	Name  string
	tiers []DegressiveRateTier
}

// NewDegressiveRateCurve validates the tiers and builds a curve.
func NewDegressiveRateCurve(name string, tiers []DegressiveRateTier) (*DegressiveRateCurve, error) {
	sorted := make([]DegressiveRateTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].FromDay < sorted[j].FromDay })

	for i, tier := range sorted {
		if tier.FromDay < 1 {
			return nil, fmt.Errorf("%w: tier starts at day %d, must be at least 1", ErrInvalidDegressiveRate, tier.FromDay)
		}
		if i > 0 && sorted[i-1].FromDay == tier.FromDay {
			return nil, fmt.Errorf("%w: duplicate tier for day %d", ErrInvalidDegressiveRate, tier.FromDay)
		}
		if tier.Value.IsNegative() {
			return nil, fmt.Errorf("%w: tier value for day %d is negative", ErrInvalidDegressiveRate, tier.FromDay)
		}
		if tier.IsRate && tier.Value.GreaterThan(hundred) {
			return nil, fmt.Errorf("%w: tier rate for day %d exceeds 100", ErrInvalidDegressiveRate, tier.FromDay)
		}
	}

	return &DegressiveRateCurve{Name: name, tiers: sorted}, nil
}

// NonDegressiveCurve bills every day at full price.
func NonDegressiveCurve() *DegressiveRateCurve {
	return &DegressiveRateCurve{Name: "non-degressive"}
}

// Tiers returns a copy of the curve tiers in ascending FromDay order.
func (c *DegressiveRateCurve) Tiers() []DegressiveRateTier {
	out := make([]DegressiveRateTier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

// ComputeForDays returns the multiplier for a rental of the given number of days,
// rounded to two decimals.
func (c *DegressiveRateCurve) ComputeForDays(days int) (decimal.Decimal, error) {
	if days < 1 {
		return decimal.Zero, fmt.Errorf("%w: duration must be at least one day, got %d", ErrInvalidArgument, days)
	}

	total := decimal.Zero
	contribution := one
	day := 1
	for _, tier := range c.tiers {
		if tier.FromDay > days {
			break
		}
		if span := tier.FromDay - day; span > 0 {
			total = total.Add(contribution.Mul(decimal.NewFromInt(int64(span))))
		}
		day = tier.FromDay
		contribution = tier.contribution()
	}
	total = total.Add(contribution.Mul(decimal.NewFromInt(int64(days - day + 1))))

	return total.Round(2), nil
}
