package handlers

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/hitrate/internal/command"
	"github.com/cory-johannsen/hitrate/internal/frontend/console"
	"github.com/cory-johannsen/hitrate/internal/hitrate"
	"github.com/cory-johannsen/hitrate/internal/preset"
)

const (
	headingWidth = 18
	labelWidth   = 11
)

// RenderScreen formats the full rates screen for form.
//
// Postcondition: Contains "Evasion", "Accuracy" and "Chance to Evade"
// lines, each followed by its percentage with a "%" suffix.
func RenderScreen(style console.Style, form *Form) string {
	o := hitrate.Evaluate(form.Matchup())

	var b strings.Builder
	b.WriteString(renderHeading(style, "Evasion", o.EvasionRate))
	renderTraits(&b, style, form.EvasionTraits())
	b.WriteString("\n")
	b.WriteString(renderHeading(style, "Accuracy", o.AccuracyRate))
	renderTraits(&b, style, form.AccuracyTraits())
	b.WriteString("\n")
	b.WriteString(renderHeading(style, "Chance to Evade", o.ChanceToEvade))
	return b.String()
}

func renderHeading(style console.Style, title string, pct int) string {
	return fmt.Sprintf("%s %s\n",
		style.Paintf(console.BrightYellow, "%-*s", headingWidth, title),
		style.Paint(console.BrightWhite, FormatPercent(pct)))
}

func renderTraits(b *strings.Builder, style console.Style, traits []Trait) {
	for _, t := range traits {
		amount := t.Amount
		if amount == "" {
			amount = style.Paint(console.Dim, "-")
		}
		fmt.Fprintf(b, "  %s %s\n",
			style.Paintf(console.BgBlack+console.White, "%-*s", labelWidth, t.Name),
			amount)
	}
}

// FormatPercent renders a rate with its "%" suffix.
func FormatPercent(pct int) string {
	return fmt.Sprintf("%d%%", pct)
}

// RenderExplain formats the intermediate values behind both rates.
func RenderExplain(style console.Style, form *Form) string {
	m := form.Matchup()
	var b strings.Builder
	renderBreakdown(&b, style, "Evasion", "agility", m.Evasion.Explain())
	renderBreakdown(&b, style, "Accuracy", "dexterity", m.Accuracy.Explain())
	o := hitrate.Evaluate(m)
	fmt.Fprintf(&b, "%s %s - %s = %s\n",
		style.Paint(console.Cyan, "Hit rate:"),
		FormatPercent(o.AccuracyRate), FormatPercent(o.EvasionRate), FormatPercent(o.HitRate))
	fmt.Fprintf(&b, "%s 100%% - %s = %s\n",
		style.Paint(console.Cyan, "Chance to evade:"),
		FormatPercent(o.HitRate), FormatPercent(o.ChanceToEvade))
	return b.String()
}

func renderBreakdown(b *strings.Builder, style console.Style, title, trait string, bd hitrate.Breakdown) {
	b.WriteString(style.Paint(console.BrightYellow, title))
	b.WriteString("\n")
	fmt.Fprintf(b, "  %-*s %.4f\n", labelWidth, trait, bd.Trait)
	fmt.Fprintf(b, "  %-*s %.4f\n", labelWidth, "luck", bd.Luck)
	fmt.Fprintf(b, "  %-*s %.4f\n", labelWidth, "base", bd.Base)
	fmt.Fprintf(b, "  %-*s %.4f\n", labelWidth, "bonus", bd.Bonus)
	fmt.Fprintf(b, "  %-*s %.4f -> %s\n", labelWidth, "raw", bd.Raw, FormatPercent(bd.Rate))
	if bd.IsNaN() {
		b.WriteString("  ")
		b.WriteString(style.Paint(console.Yellow, "negative trait or luck has no real power; the rate shows as 0%"))
		b.WriteString("\n")
	}
}

// RenderHelp formats the command list under one heading per category,
// in command.Categories order.
func RenderHelp(style console.Style, reg *command.Registry) string {
	var b strings.Builder
	byCategory := reg.CommandsByCategory()
	for _, category := range command.Categories() {
		cmds := byCategory[category]
		if len(cmds) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s\n", style.Paint(console.BrightYellow, category+":"))
		for _, cmd := range cmds {
			usage := cmd.Usage
			if usage == "" {
				usage = cmd.Name
			}
			fmt.Fprintf(&b, "  %s %s\n", style.Paintf(console.BrightCyan, "%-22s", usage), cmd.Help)
		}
	}
	fmt.Fprintf(&b, "  %s %s\n", style.Paint(console.Dim, "fields:"), strings.Join(FieldKeys(), ", "))
	return b.String()
}

// RenderPresets formats the preset list.
func RenderPresets(style console.Style, presets []*preset.Preset) string {
	if len(presets) == 0 {
		return style.Paint(console.Dim, "No presets loaded.") + "\n"
	}
	var b strings.Builder
	for _, p := range presets {
		fmt.Fprintf(&b, "  %s %s", style.Paintf(console.BrightCyan, "%-12s", p.ID), p.Name)
		if p.Description != "" {
			fmt.Fprintf(&b, " %s", style.Paint(console.Dim, "("+p.Description+")"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderError formats a user-facing error line.
func RenderError(style console.Style, err error) string {
	return style.Paint(console.Red, err.Error())
}
