package plans

import (
	"fmt"
	"regexp"

	"github.com/custodia-labs/docpatch-cli/internal/core/domain"
)

// builders lists the built-in plans in display order.
var builders = []func() *domain.PatchPlan{
	AddClientBoxes,
	FixOptionsBoot,
	RestoreLoadFn,
	RestoreLoadCall,
}

// All returns every built-in plan, freshly constructed, in a stable
// order.
func All() []*domain.PatchPlan {
	out := make([]*domain.PatchPlan, 0, len(builders))
	for _, build := range builders {
		out = append(out, build())
	}
	return out
}

// Get returns the plan with the given name.
func Get(name string) (*domain.PatchPlan, error) {
	for _, build := range builders {
		if p := build(); p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: plan %q", domain.ErrNotFound, name)
}

// Names returns the registered plan names in display order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for _, build := range builders {
		names = append(names, build().Name)
	}
	return names
}

// last marks a pattern as selecting its final occurrence.
func last(p domain.Pattern) domain.Pattern {
	p.Last = true
	return p
}

// regex compiles an expression for inline Pattern literals.
func regex(expr string) *regexp.Regexp {
	return regexp.MustCompile(expr)
}
