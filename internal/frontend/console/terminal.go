package console

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Terminal provides line-based reading and writing over a plain stream
// such as stdin/stdout.
type Terminal struct {
	reader *bufio.Reader
	w      io.Writer
	mu     sync.Mutex
	style  Style
}

// NewTerminal wraps r and w.
//
// Precondition: r and w must be non-nil.
// Postcondition: Returns a Terminal ready for reading and writing.
func NewTerminal(r io.Reader, w io.Writer, color bool) *Terminal {
	return &Terminal{
		reader: bufio.NewReaderSize(r, 4096),
		w:      w,
		style:  Style{Enabled: color},
	}
}

// Style returns the styling applied to output on this terminal.
func (t *Terminal) Style() Style {
	return t.style
}

// ReadLine reads a single line of input. The returned line excludes the
// terminator; \n, \r and \r\n all end a line. Control characters other than
// tab are dropped.
//
// Postcondition: Returns the next line, or an error (including io.EOF).
// A final unterminated line is returned together with io.EOF.
func (t *Terminal) ReadLine() (string, error) {
	var line bytes.Buffer
	for {
		b, err := t.reader.ReadByte()
		if err != nil {
			return line.String(), err
		}

		if b == '\n' {
			break
		}
		if b == '\r' {
			next, err := t.reader.Peek(1)
			if err == nil && len(next) > 0 && next[0] == '\n' {
				_, _ = t.reader.ReadByte()
			}
			break
		}

		if b < 32 && b != '\t' {
			continue
		}

		line.WriteByte(b)
	}

	return line.String(), nil
}

// WriteLine writes text followed by a newline.
//
// Precondition: text should not contain a trailing newline.
func (t *Terminal) WriteLine(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := fmt.Fprintf(t.w, "%s\n", text)
	return err
}

// Write writes raw text.
func (t *Terminal) Write(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := io.WriteString(t.w, text)
	return err
}

// WritePrompt writes a prompt without a trailing newline.
func (t *Terminal) WritePrompt(prompt string) error {
	return t.Write(t.style.Paint(Bold, prompt))
}
