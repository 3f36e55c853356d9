// Package ui reads commands from the user and frames the replies.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const maxInputBytes = 1 << 20

// Console colours.
var (
	Slate = lipgloss.Color("#667085")
	Red   = lipgloss.Color("#D93025")
)

// Options configures a Console.
type Options struct {
	// BotName is the name the console introduces itself with.
	BotName string
	// Prompt is written before each read when ShowPrompt is set.
	Prompt       string
	ShowPrompt   bool
	DividerWidth int
}

// Console handles all interaction with the user.
type Console struct {
	in   *bufio.Scanner
	out  io.Writer
	opts Options

	divider    string
	lineStyle  lipgloss.Style
	errorStyle lipgloss.Style
}

// New creates a Console reading commands from in and writing to out.
// Styling is dropped when out is not a terminal.
func New(in io.Reader, out io.Writer, opts Options) *Console {
	if opts.DividerWidth < 1 {
		opts.DividerWidth = 60
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxInputBytes)

	renderer := lipgloss.NewRenderer(out)
	return &Console{
		in:         scanner,
		out:        out,
		opts:       opts,
		divider:    strings.Repeat("_", opts.DividerWidth),
		lineStyle:  renderer.NewStyle().Foreground(Slate),
		errorStyle: renderer.NewStyle().Foreground(Red),
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ReadCommand returns the next line typed by the user, skipping blank
// lines and lines starting with '#'. ok is false once input is exhausted.
func (c *Console) ReadCommand() (line string, ok bool) {
	for {
		if c.opts.ShowPrompt {
			fmt.Fprint(c.out, c.opts.Prompt)
		}
		if !c.in.Scan() {
			return "", false
		}
		line = strings.TrimSuffix(c.in.Text(), "\r")
		if shouldIgnore(line) {
			continue
		}
		return line, true
	}
}

// Err returns the first non-EOF error hit while reading input.
func (c *Console) Err() error {
	return c.in.Err()
}

// ShowWelcome prints the greeting.
func (c *Console) ShowWelcome() {
	c.ShowMessage(fmt.Sprintf("What's good my bro! People round these parts call me %s.\nWhat can I do for ya sonny?", c.opts.BotName))
}

// ShowMessage prints msg between two divider lines.
func (c *Console) ShowMessage(msg string) {
	c.ShowLine()
	fmt.Fprintln(c.out, msg)
	c.ShowLine()
}

// ShowError prints msg between two divider lines, styled as an error.
func (c *Console) ShowError(msg string) {
	c.ShowLine()
	for _, line := range strings.Split(msg, "\n") {
		fmt.Fprintln(c.out, c.errorStyle.Render(line))
	}
	c.ShowLine()
}

// ShowLine prints a divider line.
func (c *Console) ShowLine() {
	fmt.Fprintln(c.out, c.lineStyle.Render(c.divider))
}

func shouldIgnore(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
