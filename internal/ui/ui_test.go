package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		want    tcell.Color
		wantErr bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), false},
		{"00ff00", tcell.NewRGBColor(0, 255, 0), false},
		{" #D4A017 ", tcell.NewRGBColor(0xD4, 0xA0, 0x17), false},
		{"#FFF", tcell.ColorDefault, true},
		{"#GG0000", tcell.ColorDefault, true},
		{"", tcell.ColorDefault, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.hex)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestNewTheme(t *testing.T) {
	theme, err := NewTheme("D4A017")
	if err != nil {
		t.Fatalf("NewTheme() error = %v", err)
	}
	if theme.AccentHex != "#D4A017" {
		t.Errorf("AccentHex = %q, want %q", theme.AccentHex, "#D4A017")
	}
	if _, err := NewTheme("gold"); err == nil {
		t.Error("NewTheme(gold) should fail")
	}
	if DefaultTheme().Accent != tcell.NewRGBColor(0xD4, 0xA0, 0x17) {
		t.Error("DefaultTheme() accent mismatch")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "one two", 10, []string{"one two"}},
		{"breaks", "one two three", 7, []string{"one two", "three"}},
		{"newlines", "a\n\nb", 10, []string{"a", "", "b"}},
		{"long word", "tiny enormousword", 6, []string{"tiny", "enormousword"}},
		{"polish", "Zadaj cios głową", 10, []string{"Zadaj cios", "głową"}},
		{"wide runes", "漢字 漢字", 5, []string{"漢字", "漢字"}},
		{"zero width", "a b", 0, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestConsolePrint(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out, DefaultTheme())

	c.Print(Frame{
		Status:  []string{"=> Player, 4/4 HP"},
		Body:    "Welcome, warrior!",
		Prompt:  "How hard should the fight be?",
		Options: []string{"Easy", "Even"},
		Footer:  "Esc: quit",
	})

	for _, want := range []string{"Player, 4/4 HP", "Welcome, warrior!", "How hard should the fight be?", "1. Easy", "2. Even", "Esc: quit"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Print() output missing %q:\n%s", want, out.String())
		}
	}
}

func TestConsolePrompt(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("  2 \n"), &out, DefaultTheme())
	ctx := context.Background()

	line, err := c.Prompt(ctx, "Choose:")
	if err != nil {
		t.Fatalf("Prompt() error = %v", err)
	}
	if line != "2" {
		t.Errorf("Prompt() = %q, want %q", line, "2")
	}

	for i := 0; i < 2; i++ {
		if _, err := c.Prompt(ctx, "Choose:"); !errors.Is(err, io.EOF) {
			t.Errorf("Prompt() after input ends error = %v, want io.EOF", err)
		}
	}
}

func TestConsolePromptCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	c := NewConsole(r, io.Discard, DefaultTheme())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Prompt(ctx, "Choose:"); !errors.Is(err, context.Canceled) {
		t.Errorf("Prompt() error = %v, want context.Canceled", err)
	}
}
