// Package console prints build progress to the terminal.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mitchellh/colorstring"
	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/rmake/internal/core/ports"
)

// separator is printed before a verbose build.
const separator = "-------------------------"

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter with colored, depth-indented lines.
// Only the fixed prefixes are colored; target names and command lines are
// written verbatim.
type Reporter struct {
	mu       sync.Mutex
	out      io.Writer
	errOut   io.Writer
	colorize colorstring.Colorize
}

// NewReporter creates a Reporter that prints progress to out and failures to errOut.
func NewReporter(out, errOut io.Writer) *Reporter {
	return &Reporter{
		out:    out,
		errOut: errOut,
		colorize: colorstring.Colorize{
			Colors: colorstring.DefaultColors,
			Reset:  true,
		},
	}
}

// SetColor enables or disables colored output.
func (r *Reporter) SetColor(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.colorize.Disable = !enabled
}

// Separator prints the rule shown before a verbose build.
func (r *Reporter) Separator() {
	r.println(r.out, separator)
}

// TargetStarted announces that a stale target is being built.
func (r *Reporter) TargetStarted(depth int, name string) {
	r.mu.Lock()
	prefix := r.colorize.Color("[bold]Building target")
	r.mu.Unlock()
	r.println(r.out, indent(depth)+prefix+" "+name)
}

// CommandStarted echoes a command line before it is dispatched.
func (r *Reporter) CommandStarted(depth int, line string) {
	r.mu.Lock()
	arrow := r.colorize.Color("[cyan] -->")
	r.mu.Unlock()
	r.println(r.out, indent(depth)+arrow+" "+line)
}

// CommandFailed reports a command that exited with a non-zero status.
func (r *Reporter) CommandFailed(depth int, line string, exitCode int) {
	r.mu.Lock()
	marker := r.colorize.Color("[red] !!!")
	r.mu.Unlock()
	r.println(r.errOut, fmt.Sprintf("%s%s %s (exit status %d)", indent(depth), marker, line, exitCode))
}

// Summary prints the outcome counts of a build session followed by the
// failed targets with their warnings and last stderr lines.
func (r *Reporter) Summary(summary domain.BuildSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.errOut, "%d built, %d up to date, %d failed\n",
		summary.Count(domain.VertexStatusCompleted),
		summary.Count(domain.VertexStatusCached),
		summary.Count(domain.VertexStatusFailed))

	label := r.colorize.Color("[red]failed")
	for _, t := range summary.Failed() {
		_, _ = fmt.Fprintf(r.errOut, "%s %s: %s\n", label, t.Name, t.Error)
		for _, w := range t.Warnings {
			_, _ = fmt.Fprintf(r.errOut, "  %s\n", w)
		}
		for _, line := range t.Output {
			_, _ = fmt.Fprintf(r.errOut, "  | %s\n", line)
		}
	}
}

func (r *Reporter) println(w io.Writer, s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(w, s)
}

func indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat("  ", depth)
}
