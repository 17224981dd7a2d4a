package builder

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agext/levenshtein"
	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/zerr"
)

const maxSuggestions = 3

func (e *Engine) unknownTarget(name string) error {
	err := zerr.With(zerr.Wrap(domain.ErrTargetNotFound, "cannot build"), "target", name)
	if suggestions := Suggest(name, e.registry.Names()); len(suggestions) > 0 {
		err = zerr.With(err, "did_you_mean", strings.Join(suggestions, ", "))
	}
	return err
}

// Suggest returns up to three candidates close to name, nearest first.
// Candidates further away than a third of the name's length are ignored.
func Suggest(name string, candidates []string) []string {
	limit := max(len(name)/3, 1)

	type scored struct {
		name     string
		distance int
	}
	var matches []scored
	for _, c := range candidates {
		if d := levenshtein.Distance(name, c, nil); d <= limit {
			matches = append(matches, scored{name: c, distance: d})
		}
	}
	slices.SortStableFunc(matches, func(a, b scored) int {
		return cmp.Compare(a.distance, b.distance)
	})

	out := make([]string, 0, min(len(matches), maxSuggestions))
	for _, m := range matches[:min(len(matches), maxSuggestions)] {
		out = append(out, m.name)
	}
	return out
}
