// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/rmake/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
// Every target build becomes one vertex, keyed by the target name, and every
// status update is folded into a Summary.
type Recorder struct {
	rec     *progrock.Recorder
	summary *Summary
}

// New creates a new Recorder that only keeps the build summary.
func New() *Recorder {
	return NewRecorder(nil)
}

// NewRecorder creates a new Recorder that also forwards every status update to w.
func NewRecorder(w progrock.Writer) *Recorder {
	summary := NewSummary()
	var out progrock.Writer = summary
	if w != nil {
		out = progrock.MultiWriter{summary, w}
	}
	return &Recorder{
		rec:     progrock.NewRecorder(out),
		summary: summary,
	}
}

// Record starts recording a new vertex for the named target.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := &Vertex{
		vertex: r.rec.Vertex(digest.FromString(name), name),
		name:   name,
	}
	return ports.ContextWithVertex(ctx, v), v
}

// Summary returns the targets recorded since the previous call.
func (r *Recorder) Summary() domain.BuildSummary {
	return r.summary.Take()
}

// Close closes the recording session and the forwarded writer.
func (r *Recorder) Close() error {
	return r.rec.Close()
}
