package progrock

import (
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/rmake/internal/core/ports"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
	name   string
}

// Stdout returns a writer capturing the standard output of the target's commands.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer capturing the error output of the target's commands.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log records a message labelled with the target name.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	label := progrock.WithMessageLabels(&progrock.Label{Name: targetLabel, Value: v.name})
	rec := v.vertex.Recorder
	switch {
	case level >= domain.LogLevelError:
		rec.Error(msg, label)
	case level >= domain.LogLevelWarn:
		rec.Warn(msg, label)
	default:
		rec.Debug(msg, label)
	}
}

// Complete marks the vertex as finished, failed when err is non-nil.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as up to date.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
