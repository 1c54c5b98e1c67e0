package handlers

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/hitrate/internal/command"
	"github.com/cory-johannsen/hitrate/internal/frontend/console"
	"github.com/cory-johannsen/hitrate/internal/preset"
)

var plain = console.Style{}

func scoutForm() *Form {
	f := NewForm()
	f.Set(FieldAgility, "100")
	f.Set(FieldEvadeLuck, "50")
	f.Set(FieldEvadeBonus, "5")
	f.Set(FieldDexterity, "30")
	f.Set(FieldAccLuck, "80")
	f.Set(FieldAccBonus, "2")
	return f
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "-4%", FormatPercent(-4))
	assert.Equal(t, "100%", FormatPercent(100))
}

func TestRenderScreen_Empty(t *testing.T) {
	out := RenderScreen(plain, NewForm())
	assert.Contains(t, out, "Evasion            0%")
	assert.Contains(t, out, "Accuracy           0%")
	assert.Contains(t, out, "Chance to Evade    100%")
}

func TestRenderScreen_Values(t *testing.T) {
	out := RenderScreen(plain, scoutForm())
	lines := strings.Split(out, "\n")
	assert.Equal(t, "Evasion            -4%", lines[0])
	assert.Equal(t, "  Agility     100", lines[1])
	assert.Equal(t, "  Luck        50", lines[2])
	assert.Equal(t, "  Bonus       5", lines[3])
	assert.Contains(t, out, "Accuracy           44%")
	assert.Contains(t, out, "Chance to Evade    52%")
}

func TestRenderScreen_ColoredStripsToPlain(t *testing.T) {
	f := scoutForm()
	colored := RenderScreen(console.Style{Enabled: true}, f)
	assert.NotEqual(t, RenderScreen(plain, f), colored)
	assert.Equal(t, RenderScreen(plain, f), console.StripANSI(colored))
}

func TestRenderExplain(t *testing.T) {
	out := RenderExplain(plain, scoutForm())
	assert.Contains(t, out, "agility     0.6941")
	assert.Contains(t, out, "luck        -0.7862")
	assert.Contains(t, out, "-> -4%")
	assert.Contains(t, out, "Hit rate: 44% - -4% = 48%")
	assert.Contains(t, out, "Chance to evade: 100% - 48% = 52%")
	assert.NotContains(t, out, "no real power")
}

func TestRenderExplain_FlagsNaN(t *testing.T) {
	f := NewForm()
	f.Set(FieldAgility, "-10")
	out := RenderExplain(plain, f)
	assert.Contains(t, out, "NaN")
	assert.Contains(t, out, "no real power")
}

func TestRenderHelp(t *testing.T) {
	out := RenderHelp(plain, command.DefaultRegistry())
	assert.Contains(t, out, "set <field> <value>")
	assert.Contains(t, out, "load <preset>")
	assert.Contains(t, out, "evade-luck")
}

func TestRenderHelp_GroupsUnderCategoryHeadings(t *testing.T) {
	out := RenderHelp(plain, command.DefaultRegistry())

	headings := []string{"traits:", "presets:", "view:", "system:"}
	members := [][]string{
		{"set <field> <value>", "clear [field]"},
		{"load <preset>", "presets  "},
		{"show  ", "explain  "},
		{"help  ", "quit  "},
	}
	last := -1
	for i, heading := range headings {
		at := strings.Index(out, heading+"\n")
		require.GreaterOrEqual(t, at, 0, "missing heading %q", heading)
		assert.Greater(t, at, last, "heading %q out of order", heading)
		last = at

		next := len(out)
		if i+1 < len(headings) {
			next = strings.Index(out, headings[i+1]+"\n")
		}
		for _, usage := range members[i] {
			pos := strings.Index(out[at:next], "  "+usage)
			assert.GreaterOrEqual(t, pos, 0, "%q not listed under %q", usage, heading)
		}
	}
}

func TestRenderPresets(t *testing.T) {
	assert.Contains(t, RenderPresets(plain, nil), "No presets loaded.")

	out := RenderPresets(plain, []*preset.Preset{
		{ID: "scout", Name: "Nimble Scout", Description: "quick"},
		{ID: "brute", Name: "Brute"},
	})
	assert.Contains(t, out, "scout        Nimble Scout (quick)")
	assert.Contains(t, out, "brute        Brute\n")
}

func TestRenderError(t *testing.T) {
	assert.Equal(t, "boom", RenderError(plain, errors.New("boom")))
	assert.Equal(t, console.Colorize(console.Red, "boom"), RenderError(console.Style{Enabled: true}, errors.New("boom")))
}
