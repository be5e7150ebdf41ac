package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(1)

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CD5C5C")).
			Bold(true)
)

// Console is the plain, line-oriented alternative to Screen for terminals
// without full-screen support and for piped input.
type Console struct {
	out         io.Writer
	lines       chan string
	errs        chan error
	promptStyle lipgloss.Style
}

// NewConsole starts reading lines from in. The reader goroutine exits when in
// is exhausted.
func NewConsole(in io.Reader, out io.Writer, theme Theme) *Console {
	c := &Console{
		out:         out,
		lines:       make(chan string),
		errs:        make(chan error, 1),
		promptStyle: lipgloss.NewStyle().Foreground(theme.LipglossAccent()).Bold(true),
	}
	go c.read(in)
	return c
}

func (c *Console) read(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		c.lines <- scanner.Text()
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	c.errs <- err
}

// Print writes frame as plain text.
func (c *Console) Print(frame Frame) {
	var b strings.Builder
	if len(frame.Status) > 0 {
		b.WriteString(statusStyle.Render(strings.Join(frame.Status, "\n")) + "\n\n")
	}
	if frame.Body != "" {
		b.WriteString(frame.Body + "\n\n")
	}
	if frame.Prompt != "" {
		b.WriteString(c.promptStyle.Render(frame.Prompt) + "\n")
	}
	for i, option := range frame.Options {
		b.WriteString(optionStyle.Render(fmt.Sprintf("%d. %s", i+1, option)) + "\n")
	}
	if frame.Footer != "" {
		b.WriteString(footerStyle.Render(frame.Footer) + "\n")
	}
	fmt.Fprint(c.out, b.String())
}

// Notice writes a highlighted one-line message.
func (c *Console) Notice(msg string) {
	fmt.Fprintln(c.out, noticeStyle.Render(msg))
}

// Prompt writes question and waits for a line of input. It returns ctx.Err()
// if ctx ends first, and io.EOF once input is exhausted.
func (c *Console) Prompt(ctx context.Context, question string) (string, error) {
	fmt.Fprint(c.out, c.promptStyle.Render(question)+" ")
	select {
	case line := <-c.lines:
		return strings.TrimSpace(line), nil
	case err := <-c.errs:
		c.errs <- err
		return "", err
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return "", ctx.Err()
	}
}
