package domain

import "time"

// BuildInfo is a journal record describing the last build of a target.
type BuildInfo struct {
	Target      string       `json:"target,omitzero"`
	Session     string       `json:"session,omitzero"`
	Status      VertexStatus `json:"status,omitzero"`
	CommandHash string       `json:"command_hash,omitzero"`
	Commands    int          `json:"commands,omitzero"`
	Failures    int          `json:"failures,omitzero"`
	Timestamp   time.Time    `json:"timestamp,omitzero"`
}
