package merge

import (
	"fmt"
	"time"

	"gitlet/lib/database"
	"gitlet/lib/repository"

	"go.uber.org/zap"
)

type action int

const (
	unchanged action = iota
	write
	overwrite
	remove
	conflict
)

func (a action) String() string {
	return [...]string{"unchanged", "write", "overwrite", "remove", "conflict"}[a]
}

// classify decides what happens to one path given its blob id at the split
// point, on the current branch and on the target branch. An empty id means
// the path is absent.
func classify(split, current, target string) action {
	switch {
	case current == target:
		return unchanged
	case target == split:
		return unchanged
	case split == current && target == "":
		return remove
	case split == current && split == "":
		return write
	case split == current:
		return overwrite
	default:
		return conflict
	}
}

type Result struct {
	Commit    *database.Commit
	Conflicts []string
}

func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

type Resolve struct {
	repo   *repository.Repository
	inputs *Inputs
}

func NewResolve(repo *repository.Repository, inputs *Inputs) *Resolve {
	return &Resolve{repo: repo, inputs: inputs}
}

// Execute brings the target's changes into the working tree, records
// conflicting files with markers and commits the result with both tips as
// parents. Nothing is written when a target file would land on an
// untracked one.
func (r *Resolve) Execute(now time.Time) (*Result, error) {
	split := r.inputs.Split.Tree()
	current := r.inputs.Current.Tree()
	target := r.inputs.Target.Tree()

	tree := current.Copy()
	diff := map[string][2]string{}
	conflicts := []*database.Blob{}

	for _, path := range database.TreeUnion(split, current, target) {
		act := classify(split[path], current[path], target[path])
		r.repo.Logger.Debug("classified path", zap.String("path", path), zap.Stringer("action", act))

		switch act {
		case write, overwrite:
			diff[path] = [2]string{current[path], target[path]}
			tree[path] = target[path]
		case remove:
			diff[path] = [2]string{current[path], ""}
			delete(tree, path)
		case conflict:
			blob, err := r.conflictBlob(path, current[path], target[path])
			if err != nil {
				return nil, err
			}
			oid := r.repo.Database.HashObject(blob)
			diff[path] = [2]string{current[path], oid}
			tree[path] = oid
			conflicts = append(conflicts, blob)
		}
	}

	migration := r.repo.Migration(diff)
	for _, blob := range conflicts {
		migration.Include(blob)
	}
	if err := migration.ApplyChanges(); err != nil {
		return nil, err
	}

	result := &Result{}
	for _, blob := range conflicts {
		if err := r.repo.Database.Store(blob); err != nil {
			return nil, err
		}
		r.repo.Stage.StageAddition(blob.Path(), blob.Oid())
		result.Conflicts = append(result.Conflicts, blob.Path())
	}

	message := fmt.Sprintf("Merged %s into %s.", r.inputs.TargetName, r.inputs.CurrentName)
	parents := []string{r.inputs.Current.Oid(), r.inputs.Target.Oid()}
	commit, err := r.repo.WriteCommit(parents, tree, now, message)
	if err != nil {
		return nil, err
	}
	result.Commit = commit

	return result, nil
}

func (r *Resolve) conflictBlob(path, currentOid, targetOid string) (*database.Blob, error) {
	currentData, err := r.blobData(currentOid)
	if err != nil {
		return nil, err
	}
	targetData, err := r.blobData(targetOid)
	if err != nil {
		return nil, err
	}
	content := NewConflict(currentData, targetData).String("HEAD", "")
	return database.NewBlob(path, []byte(content)), nil
}

func (r *Resolve) blobData(oid string) ([]byte, error) {
	if oid == "" {
		return nil, nil
	}
	blob, err := r.repo.Database.LoadBlob(oid)
	if err != nil {
		return nil, err
	}
	return blob.Data(), nil
}

// Merge runs a merge of targetName into the active branch.
func Merge(repo *repository.Repository, targetName string, now time.Time) (*Result, error) {
	inputs, err := NewInputs(repo, targetName)
	if err != nil {
		return nil, err
	}
	return NewResolve(repo, inputs).Execute(now)
}
