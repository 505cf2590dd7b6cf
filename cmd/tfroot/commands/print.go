package commands

import (
	"encoding/json"
	"io"

	"github.com/muesli/termenv"
	"go.trai.ch/tfroot/internal/ui/output"
	"go.trai.ch/tfroot/internal/ui/style"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printVerdict writes one styled line: a green check for true, a slate circle otherwise.
func printVerdict(out *termenv.Output, ok bool, text string) {
	icon, color := style.Circle, style.Slate
	if ok {
		icon, color = style.Check, style.Green
	}
	line := out.String(icon + " " + text).Foreground(termenv.RGBColor(string(color)))
	_, _ = out.WriteString(line.String() + "\n")
}

func newOutput(w io.Writer) *termenv.Output {
	return output.New(w)
}
