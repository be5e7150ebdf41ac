package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Frame is one screenful of match text.
type Frame struct {
	Status   []string
	Body     string
	Prompt   string
	Options  []string
	Selected int
	Footer   string
	// Notice is a one-off message such as an input error.
	Notice string
}

// Renderer handles drawing frames to the screen.
type Renderer struct {
	screen *Screen
	theme  Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws frame from the top of the screen. Text that does not fit is
// clipped; the footer always occupies the last row.
func (r *Renderer) Render(frame Frame) {
	r.screen.Clear()
	width, height := r.screen.Size()

	accent := tcell.StyleDefault.Foreground(r.theme.Accent).Bold(true)
	text := tcell.StyleDefault.Foreground(r.theme.Text)
	dim := tcell.StyleDefault.Foreground(r.theme.Dim)

	y := 0
	for _, line := range frame.Status {
		y = r.drawWrapped(line, 0, y, width, accent)
	}
	if len(frame.Status) > 0 {
		y++
	}
	if frame.Body != "" {
		y = r.drawWrapped(frame.Body, 0, y, width, text) + 1
	}
	if frame.Prompt != "" {
		y = r.drawWrapped(frame.Prompt, 0, y, width, accent) + 1
	}

	for i, option := range frame.Options {
		style := text
		if i == frame.Selected {
			style = style.Reverse(true)
		}
		label := fmt.Sprintf("%d. ", i+1)
		r.drawText(label, 0, y, width, style)
		y = r.drawWrapped(option, runewidth.StringWidth(label), y, width, style)
	}

	if frame.Notice != "" {
		r.drawText(frame.Notice, 0, height-2, width, tcell.StyleDefault.Foreground(r.theme.Warning))
	}
	if frame.Footer != "" {
		r.drawText(frame.Footer, 0, height-1, width, dim)
	}

	r.screen.Show()
}

// drawWrapped draws text wrapped to the columns [x, width) and returns the
// row after the last one drawn.
func (r *Renderer) drawWrapped(text string, x, y, width int, style tcell.Style) int {
	for _, line := range Wrap(text, width-x) {
		r.drawText(line, x, y, width, style)
		y++
	}
	return y
}

// drawText draws a single line, clipped at width.
func (r *Renderer) drawText(line string, x, y, width int, style tcell.Style) {
	for _, ch := range line {
		w := runewidth.RuneWidth(ch)
		if x+w > width {
			return
		}
		r.screen.SetContent(x, y, ch, style)
		x += w
	}
}

// Wrap breaks text into lines no wider than width display columns. Newlines
// in text start new lines; a word wider than width gets a line of its own.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line, lineWidth := words[0], runewidth.StringWidth(words[0])
		for _, word := range words[1:] {
			w := runewidth.StringWidth(word)
			if lineWidth+1+w > width {
				lines = append(lines, line)
				line, lineWidth = word, w
				continue
			}
			line += " " + word
			lineWidth += 1 + w
		}
		lines = append(lines, line)
	}
	return lines
}
