package curriculum

import (
	"fmt"
	"strings"

	"github.com/abhisek/sqlcoach/internal/sqltext"
)

// validatePhases performs all structural checks on the curriculum.
// Returns a combined error describing all problems found, or nil if valid.
func validatePhases(phases []Phase) error {
	var errs []string

	if len(phases) == 0 {
		return fmt.Errorf("curriculum validation failed:\n  no phases defined")
	}

	seen := make(map[string]bool)
	count := 0
	for _, p := range phases {
		if len(p.Lessons) == 0 {
			errs = append(errs, fmt.Sprintf("phase %d has no lessons", p.ID))
		}
		for _, l := range p.Lessons {
			count++
			if l.ID == "" {
				errs = append(errs, fmt.Sprintf("phase %d contains a lesson with no ID", p.ID))
				continue
			}
			if seen[l.ID] {
				errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
			}
			seen[l.ID] = true

			if strings.TrimSpace(l.Answer) == "" {
				errs = append(errs, fmt.Sprintf("lesson %q has no answer", l.ID))
			}
			if len(l.Hints) == 0 {
				errs = append(errs, fmt.Sprintf("lesson %q has no hints", l.ID))
			}
			if len(l.SolutionSteps) == 0 {
				errs = append(errs, fmt.Sprintf("lesson %q has no solution steps", l.ID))
				continue
			}
			for i := 1; i < len(l.SolutionSteps); i++ {
				if len(l.SolutionSteps[i]) < len(l.SolutionSteps[i-1]) {
					errs = append(errs, fmt.Sprintf("lesson %q step %d is shorter than step %d", l.ID, i+1, i))
				}
			}
			last := l.SolutionSteps[len(l.SolutionSteps)-1]
			if !sqltext.Matches(last, l.Answer) {
				errs = append(errs, fmt.Sprintf("lesson %q final step does not match its answer", l.ID))
			}
		}
	}
	if count == 0 {
		errs = append(errs, "curriculum has no lessons")
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
