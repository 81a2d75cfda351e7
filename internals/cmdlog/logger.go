// Package cmdlog prints pretty output for the cli commands
package cmdlog

import (
	"fmt"
	"os"
	"strings"

	"github.com/jwalton/gchalk"
	"github.com/mattn/go-isatty"
)

// Logger logs pretty stuff to the console
type Logger struct {
	color     bool
	indention int
}

// helper for indention
func (l *Logger) println(a string) {
	fmt.Println(strings.Repeat(" ", l.indention) + a)
}

// Headline prints a cyan headline
func (l *Logger) Headline(s string) {
	fmt.Println(gchalk.WithBold().Cyan(s))
}

// Info prints a "normal" line
func (l *Logger) Info(s string) {
	l.println(s)
}

// Log prints a dimmed line
func (l *Logger) Log(s string) {
	l.println(gchalk.Dim(s))
}

// Warn prints a warning
func (l *Logger) Warn(s string) {
	l.println(gchalk.WithBold().Yellow("Warning: ") + s)
}

// Fail prints the given message and then exits 1
func (l *Logger) Fail(s string) {
	fmt.Println(gchalk.WithBold().Red("Error: ") + s)
	os.Exit(1)
}

// DisableColors turns off all colored output
func DisableColors() {
	gchalk.SetLevel(gchalk.LevelNone)
}

// New returns a new Logger
func New() *Logger {
	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if os.Getenv("CI") != "" || os.Getenv("NO_COLOR") != "" {
		color = false
	}
	if !color {
		DisableColors()
	}
	return &Logger{color: color}
}
