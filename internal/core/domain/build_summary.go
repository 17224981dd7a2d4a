package domain

// TargetSummary describes one target visited during a build session.
type TargetSummary struct {
	Name   string
	Status VertexStatus
	// Error is set when the target failed.
	Error string
	// Warnings are the messages logged against the target, such as failed commands.
	Warnings []string
	// Output holds the last lines the target's commands wrote to stderr.
	Output []string
}

// BuildSummary lists the targets of a build session in the order they were visited.
type BuildSummary struct {
	Targets []TargetSummary
}

// Count returns the number of targets with the given status.
func (s BuildSummary) Count(status VertexStatus) int {
	n := 0
	for _, t := range s.Targets {
		if t.Status == status {
			n++
		}
	}
	return n
}

// Failed returns the failed targets in visit order.
func (s BuildSummary) Failed() []TargetSummary {
	var failed []TargetSummary
	for _, t := range s.Targets {
		if t.Status == VertexStatusFailed {
			failed = append(failed, t)
		}
	}
	return failed
}
