package lawcheck

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report collects the findings of a run.
type Report struct {
	RunID    string
	Findings []Finding
}

// Failed returns the findings of violated laws.
func (rep *Report) Failed() []Finding {
	var failed []Finding
	for _, f := range rep.Findings {
		if !f.Passed {
			failed = append(failed, f)
		}
	}
	return failed
}

// Passed is true if no law has been violated.
func (rep *Report) Passed() bool {
	return len(rep.Failed()) == 0
}

// Summary returns a one-line summary of the report.
func (rep *Report) Summary() string {
	n, k := len(rep.Findings), len(rep.Failed())
	if k == 0 {
		return fmt.Sprintf("all %d laws hold", n)
	}
	return fmt.Sprintf("%d of %d laws violated", k, n)
}

func (f Finding) result() string {
	if f.Passed {
		return "ok"
	}
	return fmt.Sprintf("FAILED (%s)", f.Counterexample)
}

// --- Console output --------------------------------------------------------

// TextOptions controls the console rendering of a report.
type TextOptions struct {
	Color bool // colorize the result column
}

// ColorFromTerminal returns true if stdout is an interactive terminal.
func ColorFromTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var setupGraphemes sync.Once

// DisplayWidth is the width of s in fixed width positions. ASCII counts one
// position per byte; other text is measured with UAX#11.
func DisplayWidth(s string) int {
	width, from := 0, 0
	for from < len(s) {
		to := from
		if s[from] < utf8.RuneSelf {
			for to < len(s) && s[to] < utf8.RuneSelf {
				to++
			}
			width += to - from
		} else {
			for to < len(s) && s[to] >= utf8.RuneSelf {
				to++
			}
			width += uaxWidth(s[from:to])
		}
		from = to
	}
	return width
}

func uaxWidth(s string) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), uax11.LatinContext)
}

// Pad appends spaces to s up to width positions.
func Pad(s string, width int) string {
	if w := DisplayWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func padLeft(s string, width int) string {
	if w := DisplayWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

var textHeader = []string{"STRUCTURE", "OP", "LAW", "SAMPLES", "RESULT"}

// WriteText renders the report as a table, one line per finding, followed by
// a summary line.
func (rep *Report) WriteText(w io.Writer, opts TextOptions) error {
	ok, failed := color.New(color.FgGreen), color.New(color.FgRed, color.Bold)
	if opts.Color {
		ok.EnableColor()
		failed.EnableColor()
	} else {
		ok.DisableColor()
		failed.DisableColor()
	}
	p := message.NewPrinter(language.English)
	rows := make([][]string, 0, len(rep.Findings)+1)
	rows = append(rows, textHeader)
	for _, f := range rep.Findings {
		rows = append(rows, []string{f.Structure, f.Symbol, f.Law, p.Sprintf("%d", f.Samples), f.result()})
	}
	widths := make([]int, len(textHeader))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], DisplayWidth(cell))
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "law check %s\n\n", rep.RunID)
	for r, row := range rows {
		b.WriteString(Pad(row[0], widths[0]))
		b.WriteString("  ")
		b.WriteString(Pad(row[1], widths[1]))
		b.WriteString("  ")
		b.WriteString(Pad(row[2], widths[2]))
		b.WriteString("  ")
		b.WriteString(padLeft(row[3], widths[3]))
		b.WriteString("  ")
		switch {
		case r == 0:
			b.WriteString(row[4])
		case rep.Findings[r-1].Passed:
			b.WriteString(ok.Sprint(row[4]))
		default:
			b.WriteString(failed.Sprint(row[4]))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(rep.Summary())
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
