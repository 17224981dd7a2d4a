package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rmake/internal/core/domain"
)

func TestBuildSummary(t *testing.T) {
	s := domain.BuildSummary{Targets: []domain.TargetSummary{
		{Name: "app", Status: domain.VertexStatusFailed, Error: "build stopped"},
		{Name: "main.o", Status: domain.VertexStatusCompleted},
		{Name: "util.o", Status: domain.VertexStatusCached},
		{Name: "test", Status: domain.VertexStatusFailed},
	}}

	assert.Equal(t, 1, s.Count(domain.VertexStatusCompleted))
	assert.Equal(t, 1, s.Count(domain.VertexStatusCached))
	assert.Equal(t, 2, s.Count(domain.VertexStatusFailed))
	assert.Zero(t, s.Count(domain.VertexStatusRunning))

	failed := s.Failed()
	if assert.Len(t, failed, 2) {
		assert.Equal(t, "app", failed[0].Name)
		assert.Equal(t, "test", failed[1].Name)
	}
	assert.Empty(t, domain.BuildSummary{}.Failed())
}
