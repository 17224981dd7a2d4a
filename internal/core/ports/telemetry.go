package ports

import (
	"context"
	"io"

	"go.trai.ch/rmake/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records one vertex per target build.
type Telemetry interface {
	// Record starts a new vertex and returns a context carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Summary returns the targets recorded since the previous call and forgets them.
	Summary() domain.BuildSummary
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is the telemetry record of a single target build.
type Vertex interface {
	// Stdout returns a writer capturing the standard output of the vertex's commands.
	Stdout() io.Writer
	// Stderr returns a writer capturing the error output of the vertex's commands.
	Stderr() io.Writer
	// Log records a message associated with this vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
	// Cached marks the vertex as up to date.
	Cached()
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex stored in ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
