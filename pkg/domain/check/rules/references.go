package rules

import (
	"path"
	"strings"

	"github.com/felixgeelhaar/speclint/pkg/domain/check"
	"github.com/felixgeelhaar/speclint/pkg/domain/spec"
)

const (
	referencesPoints = 20
	missingRefPts    = 10

	// DefaultPacksDir is where rule packs live, relative to the repository root.
	DefaultPacksDir = "rules/packs"
)

// ReferencesRule requires every contract path and rule pack to resolve to a file.
type ReferencesRule struct {
	Files    check.FileResolver
	PacksDir string
}

// ID is the name used in the checks configuration.
func (r *ReferencesRule) ID() string {
	return "references"
}

// MaxPoints is the most this rule can contribute to a score.
func (r *ReferencesRule) MaxPoints() int {
	return referencesPoints
}

// Run deducts points for every contract file or rule pack that does not exist.
func (r *ReferencesRule) Run(doc *spec.Document) check.Result {
	var res check.Result
	missing := 0

	for _, ref := range doc.Contracts() {
		target, _, _ := strings.Cut(ref.Path, "#")
		if r.Files.Exists(target) {
			continue
		}
		missing++
		res.Messages = append(res.Messages, check.LevelError.Sprintf("Missing contract file: %s (-%dpts)", ref.Path, missingRefPts))
		res.Hints = append(res.Hints, "Add or correct contract path: "+ref.Path)
	}

	dir := r.packsDir()
	for _, id := range doc.Packs() {
		if r.Files.Exists(PackPath(dir, id)) {
			continue
		}
		missing++
		res.Messages = append(res.Messages, check.LevelError.Sprintf("Missing rule pack: %s (-%dpts)", id, missingRefPts))
		res.Hints = append(res.Hints, "Ensure '"+id+".yaml' exists under "+dir+".")
	}

	if missing == 0 {
		res.Messages = append(res.Messages, check.LevelOK.Sprintf("References OK"))
	}
	res.Points = max(0, referencesPoints-missingRefPts*missing)
	return res
}

func (r *ReferencesRule) packsDir() string {
	if r.PacksDir == "" {
		return DefaultPacksDir
	}
	return r.PacksDir
}

// PackPath is the conventional location of a rule pack file.
func PackPath(dir, id string) string {
	return path.Join(dir, id+".yaml")
}
