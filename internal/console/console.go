// Package console reads sanitised input from a line-oriented terminal and
// renders numbered menus. It holds no catalog knowledge.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Messages printed for rejected input.
const (
	msgEmptyString = "Error - input must be at least one character long.\n"
	msgEmptyNumber = "\nError - you must enter something!\n"
	msgNotNumber   = "\nError! Input must be a number!\n"
	msgOutOfRange  = "\nError! Entered number must be between 1 and %d\n"
	msgPressEnter  = "Press enter to continue..."
)

// IntInput is the result of ReadInt. Value is meaningful only when Valid.
type IntInput struct {
	Value int
	Valid bool
}

// Console reads lines from an input stream and writes prompts to an output.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	clear bool
}

// Option configures a Console.
type Option func(*Console)

// WithClearScreen enables or disables clearing the screen before prompts
// and menus.
func WithClearScreen(enabled bool) Option {
	return func(c *Console) {
		c.clear = enabled
	}
}

// New creates a Console reading from in and writing to out.
// Screen clearing is enabled by default.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:    bufio.NewReader(in),
		out:   out,
		clear: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Out returns the output writer.
func (c *Console) Out() io.Writer {
	return c.out
}

// Print writes to the output.
func (c *Console) Print(a ...any) {
	_, _ = fmt.Fprint(c.out, a...)
}

// Printf writes formatted text to the output.
func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// Clear clears the screen when clearing is enabled.
func (c *Console) Clear() error {
	if !c.clear {
		return nil
	}
	return ClearScreen(c.out)
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned before io.EOF.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadString prompts for a line and returns it trimmed. When allowEmpty is
// false it keeps asking until something non-blank is entered.
func (c *Console) ReadString(prompt string, allowEmpty bool) (string, error) {
	c.Print(prompt)
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)

	for !allowEmpty && line == "" {
		if err := c.Clear(); err != nil {
			return "", err
		}
		c.Print(msgEmptyString)
		c.Print(prompt)
		if line, err = c.readLine(); err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
	}

	return line, nil
}

// ReadInt prompts for a whole number. If max > 0 the number must be
// between 1 and max. Rejected input prints an explanation, waits for
// enter and returns an IntInput with Valid unset.
func (c *Console) ReadInt(max int, prompt string) (IntInput, error) {
	c.Print("\n" + prompt)
	line, err := c.readLine()
	if err != nil {
		return IntInput{}, err
	}
	line = strings.TrimSpace(line)

	var msg string
	n, ok := parseDigits(line)
	switch {
	case line == "":
		msg = msgEmptyNumber
	case !ok:
		msg = msgNotNumber
	case max > 0 && (n < 1 || n > max):
		msg = fmt.Sprintf(msgOutOfRange, max)
	default:
		return IntInput{Value: n, Valid: true}, nil
	}

	c.Print(msg)
	if err := c.PressEnterToContinue(); err != nil {
		return IntInput{}, err
	}
	return IntInput{}, nil
}

// PressEnterToContinue waits for the next line of input.
func (c *Console) PressEnterToContinue() error {
	c.Print(msgPressEnter)
	_, err := c.readLine()
	return err
}

// Select clears the screen, renders the menu and reads an option number
// until a valid one is entered.
func (c *Console) Select(menu *Menu, prompt string) (int, error) {
	for {
		if err := c.Clear(); err != nil {
			return 0, err
		}
		if err := menu.Render(c.out); err != nil {
			return 0, err
		}
		choice, err := c.ReadInt(menu.Len(), prompt)
		if err != nil {
			return 0, err
		}
		if choice.Valid {
			return choice.Value, nil
		}
	}
}

// parseDigits accepts only unsigned decimal digits.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
