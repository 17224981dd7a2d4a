package progrock

import (
	"context"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/rmake/internal/core/domain"
)

// targetLabel tags messages with the target they were logged against.
const targetLabel = "rmake.target"

// outputTail is the number of stderr lines kept per target.
const outputTail = 5

var _ progrock.Writer = (*Summary)(nil)

// Summary is a progrock.Writer that folds status updates into per-target
// state. Only the last stderr lines of each target are kept.
type Summary struct {
	mu      sync.Mutex
	targets []*targetState
	byID    map[string]*targetState
	byName  map[string]*targetState
}

type targetState struct {
	summary domain.TargetSummary
	partial string
}

// NewSummary creates an empty Summary.
func NewSummary() *Summary {
	return &Summary{
		byID:   make(map[string]*targetState),
		byName: make(map[string]*targetState),
	}
}

// WriteStatus applies a status update.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range update.GetVertexes() {
		s.updateOrAddVertex(v)
	}
	for _, l := range update.GetLogs() {
		if l.GetStream() == progrock.LogStream_STDERR {
			if st, ok := s.byID[l.GetVertex()]; ok {
				st.appendOutput(l.GetData())
			}
		}
	}
	for _, m := range update.GetMessages() {
		s.attachMessage(m)
	}
	return nil
}

// Close does nothing.
func (s *Summary) Close() error {
	return nil
}

// Take returns the targets seen since the previous call and forgets them.
func (s *Summary) Take() domain.BuildSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := domain.BuildSummary{Targets: make([]domain.TargetSummary, 0, len(s.targets))}
	for _, st := range s.targets {
		st.flushPartial()
		out.Targets = append(out.Targets, st.summary)
	}
	s.targets = nil
	clear(s.byID)
	clear(s.byName)
	return out
}

func (s *Summary) updateOrAddVertex(v *progrock.Vertex) {
	st, ok := s.byID[v.GetId()]
	if !ok {
		st = &targetState{summary: domain.TargetSummary{
			Name:   v.GetName(),
			Status: domain.VertexStatusRunning,
		}}
		s.targets = append(s.targets, st)
		s.byID[v.GetId()] = st
		s.byName[v.GetName()] = st
	}

	switch {
	case v.GetCanceled():
		st.summary.Status = domain.VertexStatusFailed
		st.summary.Error = context.Canceled.Error()
	case v.Error != nil:
		st.summary.Status = domain.VertexStatusFailed
		st.summary.Error = v.GetError()
	case v.Completed == nil:
	case v.GetCached():
		st.summary.Status = domain.VertexStatusCached
	default:
		st.summary.Status = domain.VertexStatusCompleted
	}
}

func (s *Summary) attachMessage(m *progrock.Message) {
	if m.GetLevel() < progrock.MessageLevel_WARNING {
		return
	}
	for _, label := range m.GetLabels() {
		if label.GetName() != targetLabel {
			continue
		}
		if st, ok := s.byName[label.GetValue()]; ok {
			st.summary.Warnings = append(st.summary.Warnings, m.GetMessage())
		}
	}
}

func (st *targetState) appendOutput(data []byte) {
	text := st.partial + string(data)
	lines := strings.Split(text, "\n")
	st.partial = lines[len(lines)-1]
	for _, line := range lines[:len(lines)-1] {
		st.pushLine(line)
	}
}

func (st *targetState) flushPartial() {
	if st.partial != "" {
		st.pushLine(st.partial)
		st.partial = ""
	}
}

func (st *targetState) pushLine(line string) {
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return
	}
	st.summary.Output = append(st.summary.Output, line)
	if n := len(st.summary.Output); n > outputTail {
		st.summary.Output = append(st.summary.Output[:0], st.summary.Output[n-outputTail:]...)
	}
}
