package annotations

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

// OutputFormatter formats lowering events for human-readable display.
type OutputFormatter struct {
	useColor bool
	writer   io.Writer
}

// NewOutputFormatter creates a formatter with color support detection.
func NewOutputFormatter(w io.Writer) *OutputFormatter {
	if w == nil {
		w = os.Stdout
	}

	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isTerminal(f.Fd())
	}

	return &OutputFormatter{
		useColor: useColor,
		writer:   w,
	}
}

// Handle implements the Handler interface - prints events as they occur
func (f *OutputFormatter) Handle(event Event) {
	output := f.Format(event)
	if output != "" {
		fmt.Fprintln(f.writer, output)
	}
}

// Format converts an event to a human-readable string.
func (f *OutputFormatter) Format(event Event) string {
	latency := f.formatLatency(event.Latency)

	switch event.Name {
	case ClauseLowered:
		return fmt.Sprintf("%s %s %s",
			latency,
			f.colorize("===", color.FgGreen),
			event.Data["clause"])

	case FactLowered:
		return fmt.Sprintf("%s fact %s into %s",
			latency,
			f.colorize(fmt.Sprint(event.Data["clause"]), color.FgCyan),
			event.Data["relation"])

	case VersionEmitted:
		return fmt.Sprintf("%s version %v of %s reads %s",
			latency,
			event.Data["version"],
			f.colorize(fmt.Sprint(event.Data["relation"]), color.FgCyan),
			f.colorize(fmt.Sprint(event.Data["delta"]), color.FgYellow))

	case SymbolsInterned:
		return fmt.Sprintf("%s symbol table holds %v symbols", latency, event.Data["count"])

	case SymbolsPersisted:
		return fmt.Sprintf("%s persisted %v symbols to %s",
			latency, event.Data["count"], event.Data["path"])

	case SymbolsRestored:
		return fmt.Sprintf("%s restored %v symbols from %s",
			latency, event.Data["count"], event.Data["path"])

	case ErrorStructural, ErrorTranslation:
		return fmt.Sprintf("%s %s %v",
			latency,
			f.colorize("✗", color.FgRed),
			event.Data["error"])

	default:
		return fmt.Sprintf("%s %s %v", latency, event.Name, event.Data)
	}
}

// formatLatency formats a duration as [XXXms] or [XXXµs] with color coding.
func (f *OutputFormatter) formatLatency(d time.Duration) string {
	if d < time.Millisecond {
		s := fmt.Sprintf("[%dµs]", d.Microseconds())
		if !f.useColor {
			return s
		}
		return color.GreenString(s)
	}

	ms := float64(d.Microseconds()) / 1000.0
	s := fmt.Sprintf("[%.1fms]", ms)

	if !f.useColor {
		return s
	}

	switch {
	case ms < 50:
		return color.GreenString(s)
	case ms < 200:
		return color.YellowString(s)
	default:
		return color.RedString(s)
	}
}

// colorize applies color if enabled.
func (f *OutputFormatter) colorize(text string, attrs ...color.Attribute) string {
	if !f.useColor {
		return text
	}
	return color.New(attrs...).Sprint(text)
}

// ConsoleHandler creates a handler that prints formatted events to stdout.
func ConsoleHandler() Handler {
	formatter := NewOutputFormatter(os.Stdout)
	return formatter.Handle
}

// isTerminal treats stdout and stderr as terminals. It does not query the
// descriptor, so a redirected stdout or stderr still counts as one.
func isTerminal(fd uintptr) bool {
	return fd == uintptr(1) || fd == uintptr(2) // stdout or stderr
}
