package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/hitrate/internal/command"
	"github.com/cory-johannsen/hitrate/internal/frontend/console"
	"github.com/cory-johannsen/hitrate/internal/hitrate"
	"github.com/cory-johannsen/hitrate/internal/preset"
)

// Errors reported to the user for malformed commands. Trait values are
// never rejected; only command shape is.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownField   = errors.New("unknown field")
	ErrUnknownPreset  = errors.New("unknown preset")
	ErrMissingArg     = errors.New("missing argument")
)

// Session drives one interactive calculator screen over a Terminal.
type Session struct {
	id       string
	term     *console.Terminal
	form     *Form
	commands *command.Registry
	presets  *preset.Registry
	prompt   string
	logger   *zap.Logger
}

// NewSession creates a Session with an empty form.
//
// Precondition: term, commands and logger must be non-nil; presets may be nil.
// Postcondition: Returns a Session with a fresh random ID.
func NewSession(term *console.Terminal, commands *command.Registry, presets *preset.Registry, prompt string, logger *zap.Logger) *Session {
	id := uuid.New().String()
	return &Session{
		id:       id,
		term:     term,
		form:     NewForm(),
		commands: commands,
		presets:  presets,
		prompt:   prompt,
		logger:   logger.With(zap.String("session", id)),
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Form returns the session's mutable form.
func (s *Session) Form() *Form { return s.form }

// Run renders the screen and processes input lines until quit, EOF, or
// ctx is cancelled.
//
// Postcondition: Returns nil on quit or EOF; a non-nil error on I/O failure.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started")
	if err := s.term.Write(RenderScreen(s.term.Style(), s.form)); err != nil {
		return fmt.Errorf("rendering screen: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			s.logger.Info("session cancelled")
			return nil
		}
		if err := s.term.WritePrompt(s.prompt); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}
		line, err := s.term.ReadLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading input: %w", err)
		}
		eof := errors.Is(err, io.EOF)
		if line != "" || !eof {
			quit, herr := s.Handle(line)
			if herr != nil {
				return herr
			}
			if quit {
				s.logger.Info("session ended by user")
				return nil
			}
		}
		if eof {
			s.logger.Info("session ended at end of input")
			return nil
		}
	}
}

// Handle executes a single input line against the session.
//
// Postcondition: Returns quit == true when the line asks to leave. User
// mistakes are written to the terminal; the returned error is reserved for
// terminal write failures.
func (s *Session) Handle(line string) (bool, error) {
	parsed := command.Parse(line)
	if parsed.Command == "" {
		return false, nil
	}

	cmd, ok := s.commands.Resolve(parsed.Command)
	if !ok {
		return false, s.fail(fmt.Errorf("%w: %q (try \"help\")", ErrUnknownCommand, parsed.Command))
	}

	s.logger.Debug("command",
		zap.String("command", cmd.Name),
		zap.Strings("args", parsed.Args),
	)

	switch cmd.Handler {
	case command.HandlerSet:
		return false, s.handleSet(parsed)
	case command.HandlerClear:
		return false, s.handleClear(parsed)
	case command.HandlerLoad:
		return false, s.handleLoad(parsed)
	case command.HandlerPresets:
		return false, s.term.Write(RenderPresets(s.term.Style(), s.presetList()))
	case command.HandlerShow:
		return false, s.render()
	case command.HandlerExplain:
		return false, s.term.Write(RenderExplain(s.term.Style(), s.form))
	case command.HandlerHelp:
		return false, s.term.Write(RenderHelp(s.term.Style(), s.commands))
	case command.HandlerQuit:
		return true, nil
	}
	return false, s.fail(fmt.Errorf("%w: %q has no handler", ErrUnknownCommand, cmd.Name))
}

func (s *Session) handleSet(p command.ParseResult) error {
	if len(p.Args) == 0 {
		return s.fail(fmt.Errorf("%w: usage: set <field> <value>", ErrMissingArg))
	}
	field, ok := LookupField(p.Args[0])
	if !ok {
		return s.fail(fmt.Errorf("%w: %q (fields: %s)", ErrUnknownField, p.Args[0], strings.Join(FieldKeys(), ", ")))
	}
	value := p.After(1)
	s.form.Set(field, value)
	s.logger.Debug("field set",
		zap.String("field", field.Key()),
		zap.String("value", value),
	)
	return s.render()
}

func (s *Session) handleClear(p command.ParseResult) error {
	if len(p.Args) == 0 {
		s.form.ClearAll()
		return s.render()
	}
	field, ok := LookupField(p.Args[0])
	if !ok {
		return s.fail(fmt.Errorf("%w: %q", ErrUnknownField, p.Args[0]))
	}
	s.form.Clear(field)
	return s.render()
}

func (s *Session) handleLoad(p command.ParseResult) error {
	if len(p.Args) == 0 {
		return s.fail(fmt.Errorf("%w: usage: load <preset>", ErrMissingArg))
	}
	if s.presets == nil {
		return s.fail(fmt.Errorf("%w: %q (no presets loaded)", ErrUnknownPreset, p.Args[0]))
	}
	pr, ok := s.presets.Lookup(p.Args[0])
	if !ok {
		return s.fail(fmt.Errorf("%w: %q", ErrUnknownPreset, p.Args[0]))
	}
	s.form.Load(pr)
	s.logger.Debug("preset loaded", zap.String("preset", pr.ID))
	return s.render()
}

func (s *Session) presetList() []*preset.Preset {
	if s.presets == nil {
		return nil
	}
	return s.presets.All()
}

func (s *Session) render() error {
	o := hitrate.Evaluate(s.form.Matchup())
	s.logger.Debug("rates computed",
		zap.Int("evasion", o.EvasionRate),
		zap.Int("accuracy", o.AccuracyRate),
		zap.Int("hit", o.HitRate),
		zap.Int("chance_to_evade", o.ChanceToEvade),
	)
	return s.term.Write(RenderScreen(s.term.Style(), s.form))
}

func (s *Session) fail(err error) error {
	s.logger.Debug("command rejected", zap.Error(err))
	return s.term.WriteLine(RenderError(s.term.Style(), err))
}
