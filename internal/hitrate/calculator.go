// Package hitrate converts textual character traits into hit-rate percentages.
//
// Every function is pure and total: unparsable input is treated as the
// neutral value 0.0 and no function returns an error.
package hitrate

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Curve exponents and scales calibrated to the reference game system.
const (
	luckExponent      = 0.96
	luckDivisor       = 200.0
	dexterityExponent = 0.2
	dexterityDivisor  = 20.0
	agilityExponent   = 0.9
	agilityDivisor    = 1000.0
	traitFactor       = 11.0
	percent           = 100.0
)

// EvasionRate returns the evasion percentage for the given agility, luck and bonus.
//
// Postcondition: Never fails; unparsable inputs contribute 0.0.
func EvasionRate(agility, luck, bonus string) int {
	return ExplainEvasion(agility, luck, bonus).Rate
}

// AccuracyRate returns the accuracy percentage for the given dexterity, luck and bonus.
//
// Postcondition: Never fails; unparsable inputs contribute 0.0.
func AccuracyRate(dexterity, luck, bonus string) int {
	return ExplainAccuracy(dexterity, luck, bonus).Rate
}

// HitRate returns accuracyRate minus evasionRate.
func HitRate(accuracyRate, evasionRate int) int {
	return roundToInt(float64(accuracyRate) - float64(evasionRate))
}

// ChanceToEvade returns 100 minus the hit rate of accuracyRate against evasionRate.
//
// Postcondition: Result is not clamped and may fall outside [0, 100].
func ChanceToEvade(evasionRate, accuracyRate int) int {
	return 100 - HitRate(accuracyRate, evasionRate)
}

// parseOrZero parses s as a float64 literal. Syntax errors yield 0.0;
// out-of-range literals keep the saturated ±Inf.
func parseOrZero(s string) float64 {
	v, ok := parse(s)
	if !ok {
		return 0
	}
	return v
}

// parse reads s with the host game's number grammar: surrounding control
// characters and spaces are ignored, one trailing f/F/d/D type suffix is
// allowed, and the only named values are the exact spellings "NaN" and
// "Infinity". Digit separators and Go's "inf"/"nan" forms are rejected.
func parse(s string) (float64, bool) {
	s = strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })

	body := s
	neg := false
	if body != "" && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}
	switch body {
	case "NaN":
		return math.NaN(), true
	case "Infinity":
		if neg {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	if body == "" || body[0] == '+' || body[0] == '-' || strings.ContainsAny(body, "_nNiI") {
		return 0, false
	}
	if n := len(s); n > 1 && strings.IndexByte("fFdD", s[n-1]) >= 0 && isMantissaEnd(s[n-2]) {
		s = s[:n-1]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

func isMantissaEnd(c byte) bool {
	return c == '.' || ('0' <= c && c <= '9')
}

func luckValue(luck string) float64 {
	v, ok := parse(luck)
	if !ok {
		return 0
	}
	return math.Pow(v, luckExponent)/luckDivisor - 1
}

func dexterityValue(dex string) float64 {
	v, ok := parse(dex)
	if !ok {
		return 0
	}
	return (traitFactor * math.Pow(v, dexterityExponent)) / dexterityDivisor
}

func agilityValue(agility string) float64 {
	v, ok := parse(agility)
	if !ok {
		return 0
	}
	return (traitFactor * math.Pow(v, agilityExponent)) / agilityDivisor
}

func bonusValue(bonus string) float64 {
	return parseOrZero(bonus)
}

func baseRate(luck, other float64) float64 {
	return (luck + other) * percent
}

// roundToInt rounds half to even and converts to a 32-bit-bounded int.
// NaN becomes 0; values past the bounds saturate.
func roundToInt(x float64) int {
	r := math.RoundToEven(x)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= math.MaxInt32:
		return math.MaxInt32
	case r <= math.MinInt32:
		return math.MinInt32
	}
	return int(r)
}
