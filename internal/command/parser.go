package command

import "strings"

// ParseResult holds the parsed command name and arguments from a console line.
type ParseResult struct {
	// Command is the first word of the input, lowercased.
	Command string
	// Args are the remaining words after the command, case preserved.
	Args []string
	// RawArgs is the raw text after the command, trimmed at both ends.
	RawArgs string
}

// Parse splits a console line into a command and arguments.
//
// Postcondition: Returns a ParseResult. If line is blank, Command is empty.
func Parse(line string) ParseResult {
	line = strings.TrimSpace(line)
	if line == "" {
		return ParseResult{}
	}

	spaceIdx := strings.IndexAny(line, " \t")
	if spaceIdx < 0 {
		return ParseResult{Command: strings.ToLower(line)}
	}

	rest := strings.TrimSpace(line[spaceIdx+1:])
	var args []string
	if rest != "" {
		args = strings.Fields(rest)
	}

	return ParseResult{
		Command: strings.ToLower(line[:spaceIdx]),
		Args:    args,
		RawArgs: rest,
	}
}

// After returns the raw text following the first n arguments, with inner
// spacing preserved. Trait values are free text, so "set luck 1 2" keeps "1 2".
//
// Postcondition: Returns "" when there are n or fewer arguments.
func (p ParseResult) After(n int) string {
	rest := p.RawArgs
	for i := 0; i < n; i++ {
		rest = strings.TrimLeft(rest, " \t")
		idx := strings.IndexAny(rest, " \t")
		if idx < 0 {
			return ""
		}
		rest = rest[idx:]
	}
	return strings.TrimSpace(rest)
}
