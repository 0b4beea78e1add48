package rules

import (
	"errors"
	"fmt"
	"slices"

	"github.com/felixgeelhaar/speclint/pkg/domain/check"
)

// ErrUnknownCheck is returned when a configured check name has no implementation.
var ErrUnknownCheck = errors.New("unknown check")

// Names lists the built-in checks in scoring order.
var Names = []string{"structural", "traceability", "references", "coverage"}

// NewRegistry builds a registry from check names. An empty list enables every built-in check.
// Checks always run in the canonical order regardless of the order names are given in.
func NewRegistry(names []string, files check.FileResolver, packsDir string) (*check.Registry, error) {
	if len(names) == 0 {
		names = Names
	}

	enabled := make(map[string]bool, len(names))
	for _, n := range names {
		if !slices.Contains(Names, n) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCheck, n)
		}
		enabled[n] = true
	}

	reg := &check.Registry{}
	for _, n := range Names {
		if !enabled[n] {
			continue
		}
		switch n {
		case "structural":
			reg.Checks = append(reg.Checks, &StructuralRule{})
		case "traceability":
			reg.Checks = append(reg.Checks, &TraceabilityRule{})
		case "references":
			reg.Checks = append(reg.Checks, &ReferencesRule{Files: files, PacksDir: packsDir})
		case "coverage":
			reg.Checks = append(reg.Checks, &CoverageRule{})
		}
	}
	return reg, nil
}
