package hitrate

import "math"

// Breakdown holds the intermediate values of a single rate computation.
//
// Postcondition: Base == (Luck+Trait)*100, Raw == Base+Bonus, Rate == round(Raw).
type Breakdown struct {
	// Trait is the curved primary trait (agility or dexterity).
	Trait float64
	// Luck is the curved luck value; -1 for a parsable zero, 0 when unparsable.
	Luck float64
	// Bonus is the flat bonus added after scaling.
	Bonus float64
	// Base is the combined trait and luck contribution in percent.
	Base float64
	// Raw is the unrounded rate.
	Raw float64
	// Rate is Raw rounded half to even.
	Rate int
}

// IsNaN reports whether the unrounded rate is not a number, which happens
// when a negative trait or luck is raised to a fractional power.
func (b Breakdown) IsNaN() bool {
	return math.IsNaN(b.Raw)
}

// ExplainEvasion returns the intermediate values behind EvasionRate.
func ExplainEvasion(agility, luck, bonus string) Breakdown {
	return explain(agilityValue(agility), luckValue(luck), bonusValue(bonus))
}

// ExplainAccuracy returns the intermediate values behind AccuracyRate.
func ExplainAccuracy(dexterity, luck, bonus string) Breakdown {
	return explain(dexterityValue(dexterity), luckValue(luck), bonusValue(bonus))
}

func explain(trait, luck, bonus float64) Breakdown {
	base := baseRate(luck, trait)
	// The conversion keeps base rounded so the add is never fused into an FMA.
	raw := float64(base) + bonus
	return Breakdown{
		Trait: trait,
		Luck:  luck,
		Bonus: bonus,
		Base:  base,
		Raw:   raw,
		Rate:  roundToInt(raw),
	}
}
