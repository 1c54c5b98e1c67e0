// Package handlers implements the interactive hit-rate screen: form state,
// rendering, and the command session loop.
package handlers

import (
	"strings"

	"github.com/cory-johannsen/hitrate/internal/hitrate"
	"github.com/cory-johannsen/hitrate/internal/preset"
)

// Field identifies one editable input on the screen.
type Field int

// Screen fields in display order.
const (
	FieldAgility Field = iota
	FieldEvadeLuck
	FieldEvadeBonus
	FieldDexterity
	FieldAccLuck
	FieldAccBonus
	fieldCount
)

type fieldInfo struct {
	key     string
	label   string
	aliases []string
}

var fields = [fieldCount]fieldInfo{
	FieldAgility:    {key: "agility", label: "Agility", aliases: []string{"agi", "ag"}},
	FieldEvadeLuck:  {key: "evade-luck", label: "Luck", aliases: []string{"eluck", "el"}},
	FieldEvadeBonus: {key: "evade-bonus", label: "Bonus", aliases: []string{"ebonus", "eb"}},
	FieldDexterity:  {key: "dexterity", label: "Dexterity", aliases: []string{"dex"}},
	FieldAccLuck:    {key: "acc-luck", label: "Luck", aliases: []string{"aluck", "al"}},
	FieldAccBonus:   {key: "acc-bonus", label: "Bonus", aliases: []string{"abonus", "ab"}},
}

// Key returns the canonical command-line name of f.
func (f Field) Key() string { return fields[f].key }

// Label returns the on-screen label of f.
func (f Field) Label() string { return fields[f].label }

// LookupField resolves a field by key or alias, ignoring case.
//
// Postcondition: Returns (field, true) if found, or (0, false).
func LookupField(name string) (Field, bool) {
	name = strings.ToLower(name)
	for i, info := range fields {
		if info.key == name {
			return Field(i), true
		}
		for _, a := range info.aliases {
			if a == name {
				return Field(i), true
			}
		}
	}
	return 0, false
}

// FieldKeys returns every canonical field key in display order.
func FieldKeys() []string {
	keys := make([]string, 0, fieldCount)
	for _, info := range fields {
		keys = append(keys, info.key)
	}
	return keys
}

// Trait is one labelled row of raw input.
type Trait struct {
	ID     int
	Name   string
	Amount string
}

// Form holds the raw text of every field. It is the only mutable state of
// the screen; the calculator only ever sees Matchup snapshots.
type Form struct {
	values [fieldCount]string
}

// NewForm returns a Form with every field empty.
func NewForm() *Form {
	return &Form{}
}

// Set stores raw text for f. The text is not validated.
func (f *Form) Set(field Field, value string) {
	f.values[field] = value
}

// Get returns the raw text of field.
func (f *Form) Get(field Field) string {
	return f.values[field]
}

// Clear empties one field.
func (f *Form) Clear(field Field) {
	f.values[field] = ""
}

// ClearAll empties every field.
func (f *Form) ClearAll() {
	f.values = [fieldCount]string{}
}

// Load replaces every field with the values of p.
//
// Precondition: p must be non-nil.
func (f *Form) Load(p *preset.Preset) {
	m := p.Matchup()
	f.values = [fieldCount]string{
		FieldAgility:    m.Evasion.Agility,
		FieldEvadeLuck:  m.Evasion.Luck,
		FieldEvadeBonus: m.Evasion.Bonus,
		FieldDexterity:  m.Accuracy.Dexterity,
		FieldAccLuck:    m.Accuracy.Luck,
		FieldAccBonus:   m.Accuracy.Bonus,
	}
}

// Matchup returns an immutable snapshot of the form as calculator input.
func (f *Form) Matchup() hitrate.Matchup {
	return hitrate.Matchup{
		Evasion: hitrate.EvasionTraits{
			Agility: f.values[FieldAgility],
			Luck:    f.values[FieldEvadeLuck],
			Bonus:   f.values[FieldEvadeBonus],
		},
		Accuracy: hitrate.AccuracyTraits{
			Dexterity: f.values[FieldDexterity],
			Luck:      f.values[FieldAccLuck],
			Bonus:     f.values[FieldAccBonus],
		},
	}
}

// EvasionTraits returns the evasion rows in display order.
func (f *Form) EvasionTraits() []Trait {
	return f.rows(FieldAgility, FieldEvadeLuck, FieldEvadeBonus)
}

// AccuracyTraits returns the accuracy rows in display order.
func (f *Form) AccuracyTraits() []Trait {
	return f.rows(FieldDexterity, FieldAccLuck, FieldAccBonus)
}

func (f *Form) rows(ids ...Field) []Trait {
	out := make([]Trait, len(ids))
	for i, id := range ids {
		out[i] = Trait{ID: i, Name: id.Label(), Amount: f.values[id]}
	}
	return out
}
