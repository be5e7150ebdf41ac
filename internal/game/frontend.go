package game

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/message"

	"github.com/samdwyer/keywordfight/internal/ui"
)

func frameOf(view View) ui.Frame {
	return ui.Frame{
		Status:  view.Status,
		Body:    view.LastAction,
		Prompt:  view.NextAction,
		Options: view.Actions,
	}
}

// isYes accepts English and Polish affirmatives.
func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "t", "tak":
		return true
	default:
		return false
	}
}

// ScreenFrontend plays on a full-screen terminal.
type ScreenFrontend struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	p        *message.Printer
	frame    ui.Frame
}

// NewScreenFrontend takes over the terminal.
func NewScreenFrontend(theme ui.Theme, cfg Config) (*ScreenFrontend, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return &ScreenFrontend{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		p:        cfg.printer(),
	}, nil
}

// Choose implements Frontend. Digits pick an option directly; arrows move the
// selection and Enter confirms it. Esc, Ctrl+C and q return ErrCancelled.
func (f *ScreenFrontend) Choose(ctx context.Context, view View) (int, error) {
	stop := context.AfterFunc(ctx, f.screen.Interrupt)
	defer stop()

	f.frame = frameOf(view)
	f.frame.Footer = f.p.Sprintf("1-9 or arrows and Enter: choose. Esc: quit.")
	count := len(f.frame.Options)
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		f.renderer.Render(f.frame)

		switch ev := f.screen.PollEvent().(type) {
		case nil:
			return 0, ErrCancelled
		case *tcell.EventResize:
			f.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return 0, ErrCancelled
			case tcell.KeyUp:
				if count > 0 {
					f.frame.Selected = (f.frame.Selected + count - 1) % count
				}
			case tcell.KeyDown:
				if count > 0 {
					f.frame.Selected = (f.frame.Selected + 1) % count
				}
			case tcell.KeyEnter:
				f.frame.Notice = ""
				return f.frame.Selected, nil
			case tcell.KeyRune:
				switch r := ev.Rune(); {
				case r == 'q' || r == 'Q':
					return 0, ErrCancelled
				case r >= '1' && r <= '9':
					f.frame.Notice = ""
					return int(r - '1'), nil
				}
			}
		}
	}
}

// Confirm implements Frontend.
func (f *ScreenFrontend) Confirm(ctx context.Context, view View, question string) (bool, error) {
	stop := context.AfterFunc(ctx, f.screen.Interrupt)
	defer stop()

	f.frame = frameOf(view)
	f.frame.Prompt = question
	f.frame.Options = nil
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		f.renderer.Render(f.frame)

		switch ev := f.screen.PollEvent().(type) {
		case nil:
			return false, ErrCancelled
		case *tcell.EventResize:
			f.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return false, ErrCancelled
			case tcell.KeyRune:
				r := string(ev.Rune())
				if isYes(r) {
					return true, nil
				}
				if r == "n" || r == "N" {
					return false, nil
				}
			}
		}
	}
}

// Notify implements Frontend.
func (f *ScreenFrontend) Notify(msg string) {
	f.frame.Notice = msg
	f.renderer.Render(f.frame)
}

// Close restores the terminal.
func (f *ScreenFrontend) Close() {
	f.screen.Close()
}

// ConsoleFrontend plays on a line console.
type ConsoleFrontend struct {
	console *ui.Console
	p       *message.Printer
}

// NewConsoleFrontend reads answers from in and writes frames to out.
func NewConsoleFrontend(in io.Reader, out io.Writer, theme ui.Theme, cfg Config) *ConsoleFrontend {
	return &ConsoleFrontend{
		console: ui.NewConsole(in, out, theme),
		p:       cfg.printer(),
	}
}

// Choose implements Frontend. Options are numbered from 1; anything that is
// not a number comes back as -1. "q" and the end of input cancel.
func (f *ConsoleFrontend) Choose(ctx context.Context, view View) (int, error) {
	f.console.Print(frameOf(view))
	line, err := f.prompt(ctx, f.p.Sprintf("Your choice:"))
	if err != nil {
		return 0, err
	}
	if strings.EqualFold(line, "q") {
		return 0, ErrCancelled
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return -1, nil
	}
	return n - 1, nil
}

// Confirm implements Frontend.
func (f *ConsoleFrontend) Confirm(ctx context.Context, view View, question string) (bool, error) {
	frame := frameOf(view)
	frame.Prompt, frame.Options = "", nil
	f.console.Print(frame)
	line, err := f.prompt(ctx, question)
	if err != nil {
		return false, err
	}
	return isYes(line), nil
}

func (f *ConsoleFrontend) prompt(ctx context.Context, question string) (string, error) {
	line, err := f.console.Prompt(ctx, question)
	if errors.Is(err, io.EOF) {
		return "", ErrCancelled
	}
	return line, err
}

// Notify implements Frontend.
func (f *ConsoleFrontend) Notify(msg string) {
	f.console.Notice(msg)
}

// Close implements Frontend.
func (f *ConsoleFrontend) Close() {}
