package stage

import (
	"path"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
)

const (
	ADD_STAGE    = "add_stage"
	REMOVE_STAGE = "remove_stage"
)

// Area holds the addition and removal stages of a repository. A path is
// never pending in both.
type Area struct {
	Additions *Stage
	Removals  *Stage
}

func NewArea(fs billy.Filesystem, gitPath string, logger *zap.Logger) *Area {
	return &Area{
		Additions: NewStage(fs, path.Join(gitPath, ADD_STAGE), logger),
		Removals:  NewStage(fs, path.Join(gitPath, REMOVE_STAGE), logger),
	}
}

func (a *Area) Load() error {
	if err := a.Additions.Load(); err != nil {
		return err
	}
	return a.Removals.Load()
}

func (a *Area) WriteUpdates() error {
	if err := a.Additions.WriteUpdates(); err != nil {
		return err
	}
	return a.Removals.WriteUpdates()
}

func (a *Area) IsEmpty() bool {
	return a.Additions.Len() == 0 && a.Removals.Len() == 0
}

func (a *Area) Clear() {
	a.Additions.Clear()
	a.Removals.Clear()
}

// StageAddition records oid for path and cancels any pending removal.
func (a *Area) StageAddition(path, oid string) {
	a.Removals.Delete(path)
	a.Additions.Set(path, oid)
}

// StageRemoval records the removal of path and drops any pending addition.
func (a *Area) StageRemoval(path, oid string) {
	a.Additions.Delete(path)
	a.Removals.Set(path, oid)
}

// Unstage drops path from both stages and reports whether it was pending.
func (a *Area) Unstage(path string) bool {
	added := a.Additions.Delete(path)
	removed := a.Removals.Delete(path)
	return added || removed
}
