package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/tfroot/internal/ui/output"
	"go.trai.ch/tfroot/internal/ui/style"
)

// mark is the icon and color a record is rendered with.
type mark struct {
	icon  string
	color lipgloss.Color
}

// markFor maps a level onto the verdict palette. Levels between the named ones
// take the mark of the nearest level below.
func markFor(level slog.Level) mark {
	switch {
	case level >= slog.LevelError:
		return mark{style.Cross, style.Red}
	case level >= slog.LevelWarn:
		return mark{style.Warning, style.Yellow}
	case level >= slog.LevelInfo:
		return mark{"", style.Slate}
	default:
		return mark{style.Dot, style.Iris}
	}
}

// PrettyHandler renders records as single colored lines: an optional level icon,
// the message, then key=value attrs.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string   // pre-rendered attrs from WithAttrs
	groups []string // open groups, outermost first
}

// NewPrettyHandler creates a handler writing to w, or stderr when w is nil.
// The level is read on every record, so a *slog.LevelVar may change later.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}
	h := &PrettyHandler{out: output.New(w), level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled reports whether records at level are written.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes one line for r.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	m := markFor(r.Level)

	var b strings.Builder
	if m.icon != "" {
		b.WriteString(m.icon + " ")
	}
	b.WriteString(r.Message)
	b.WriteString(h.prefix)
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&b, a)
		return true
	})

	line := h.out.String(b.String()).Foreground(termenv.RGBColor(string(m.color)))
	_, err := h.out.WriteString(line.String() + "\n")
	return err
}

func (h *PrettyHandler) appendAttr(b *strings.Builder, a slog.Attr) {
	b.WriteByte(' ')
	for _, g := range h.groups {
		b.WriteString(g + ".")
	}
	b.WriteString(a.Key + "=" + a.Value.String())
}

// WithAttrs returns a handler that renders attrs on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.prefix)
	for _, a := range attrs {
		h.appendAttr(&b, a)
	}
	clone := *h
	clone.prefix = b.String()
	return &clone
}

// WithGroup returns a handler that qualifies later attr keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}
