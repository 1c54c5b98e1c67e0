package hitrate

// EvasionTraits are the raw inputs of the defending side.
type EvasionTraits struct {
	Agility string
	Luck    string
	Bonus   string
}

// Rate returns EvasionRate for t.
func (t EvasionTraits) Rate() int {
	return EvasionRate(t.Agility, t.Luck, t.Bonus)
}

// Explain returns the intermediate values behind t.Rate.
func (t EvasionTraits) Explain() Breakdown {
	return ExplainEvasion(t.Agility, t.Luck, t.Bonus)
}

// AccuracyTraits are the raw inputs of the attacking side.
type AccuracyTraits struct {
	Dexterity string
	Luck      string
	Bonus     string
}

// Rate returns AccuracyRate for t.
func (t AccuracyTraits) Rate() int {
	return AccuracyRate(t.Dexterity, t.Luck, t.Bonus)
}

// Explain returns the intermediate values behind t.Rate.
func (t AccuracyTraits) Explain() Breakdown {
	return ExplainAccuracy(t.Dexterity, t.Luck, t.Bonus)
}

// Matchup pairs a defender's evasion traits with an attacker's accuracy traits.
type Matchup struct {
	Evasion  EvasionTraits
	Accuracy AccuracyTraits
}

// Outcome is every percentage derived from a Matchup.
type Outcome struct {
	EvasionRate   int
	AccuracyRate  int
	HitRate       int
	ChanceToEvade int
}

// Evaluate computes the Outcome of m.
//
// Postcondition: ChanceToEvade == 100 - HitRate and
// HitRate == AccuracyRate - EvasionRate.
func Evaluate(m Matchup) Outcome {
	evasion := m.Evasion.Rate()
	accuracy := m.Accuracy.Rate()
	return Outcome{
		EvasionRate:   evasion,
		AccuracyRate:  accuracy,
		HitRate:       HitRate(accuracy, evasion),
		ChanceToEvade: ChanceToEvade(evasion, accuracy),
	}
}
