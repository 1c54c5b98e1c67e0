// Package command provides the console command registry, parser, and built-in command definitions.
package command

// Categories for organizing commands.
const (
	CategoryTraits  = "traits"
	CategoryPresets = "presets"
	CategoryView    = "view"
	CategorySystem  = "system"
)

// Categories returns the command categories in help display order.
func Categories() []string {
	return []string{CategoryTraits, CategoryPresets, CategoryView, CategorySystem}
}

// Handler identifiers mapping commands to session handlers.
const (
	HandlerSet     = "set"
	HandlerClear   = "clear"
	HandlerLoad    = "load"
	HandlerPresets = "presets"
	HandlerShow    = "show"
	HandlerExplain = "explain"
	HandlerHelp    = "help"
	HandlerQuit    = "quit"
)

// Command defines a user-invocable console command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage shows the argument form, e.g. "set <field> <value>".
	Usage string
	// Help is the short help text.
	Help string
	// Category groups the command.
	Category string
	// Handler maps to the session handler.
	Handler string
}

// BuiltinCommands returns all built-in console commands.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "set", Aliases: []string{"s"}, Usage: "set <field> <value>", Help: "Set a trait field to raw text", Category: CategoryTraits, Handler: HandlerSet},
		{Name: "clear", Aliases: []string{"c", "reset"}, Usage: "clear [field]", Help: "Clear one field, or all fields", Category: CategoryTraits, Handler: HandlerClear},

		{Name: "load", Aliases: []string{"use"}, Usage: "load <preset>", Help: "Fill every field from a preset", Category: CategoryPresets, Handler: HandlerLoad},
		{Name: "presets", Aliases: []string{"ls"}, Usage: "presets", Help: "List available presets", Category: CategoryPresets, Handler: HandlerPresets},

		{Name: "show", Aliases: []string{"look", "l"}, Usage: "show", Help: "Redraw the rates screen", Category: CategoryView, Handler: HandlerShow},
		{Name: "explain", Aliases: []string{"why"}, Usage: "explain", Help: "Show the intermediate values behind each rate", Category: CategoryView, Handler: HandlerExplain},

		{Name: "help", Aliases: []string{"?", "h"}, Usage: "help", Help: "List commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Usage: "quit", Help: "Leave the calculator", Category: CategorySystem, Handler: HandlerQuit},
	}
}
