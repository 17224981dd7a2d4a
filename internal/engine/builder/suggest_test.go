package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rmake/internal/engine/builder"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		candidates []string
		want       []string
	}{
		{
			name:       "single typo",
			input:      "instal",
			candidates: []string{"install", "clean", "test"},
			want:       []string{"install"},
		},
		{
			name:       "nearest first",
			input:      "install",
			candidates: []string{"uninstall", "clean", "instal"},
			want:       []string{"instal", "uninstall"},
		},
		{
			name:       "nothing close",
			input:      "deploy",
			candidates: []string{"all", "clean"},
			want:       []string{},
		},
		{
			name:       "capped at three",
			input:      "a.o",
			candidates: []string{"b.o", "c.o", "d.o", "e.o"},
			want:       []string{"b.o", "c.o", "d.o"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, builder.Suggest(tt.input, tt.candidates))
		})
	}
}
