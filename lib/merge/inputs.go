package merge

import (
	"gitlet/lib/database"
	"gitlet/lib/repository"

	"go.uber.org/zap"
)

// Inputs are the two tips of a merge and their split point. Building them
// runs every precondition, so a merge that gets Inputs can proceed.
type Inputs struct {
	CurrentName string
	TargetName  string
	Current     *database.Commit
	Target      *database.Commit
	Split       *database.Commit
	repo        *repository.Repository
}

func NewInputs(repo *repository.Repository, targetName string) (*Inputs, error) {
	inputs := &Inputs{
		repo:       repo,
		TargetName: targetName,
	}

	if !repo.Stage.IsEmpty() {
		return nil, ErrUncommittedChanges
	}
	if !repo.Refs.BranchExists(targetName) {
		return nil, repository.ErrBranchNotExist
	}

	currentName, err := repo.Refs.CurrentBranch()
	if err != nil {
		return nil, err
	}
	inputs.CurrentName = currentName
	if currentName == targetName {
		return nil, ErrSelfMerge
	}

	if inputs.Current, err = repo.HeadCommit(); err != nil {
		return nil, err
	}
	if inputs.Target, err = inputs.loadBranch(targetName); err != nil {
		return nil, err
	}

	inputs.Split, err = NewSplitPoint(repo.Database, inputs.Current.Oid(), inputs.Target.Oid()).Find()
	if err != nil {
		return nil, err
	}
	repo.Logger.Debug("found split point",
		zap.String("current", inputs.Current.Oid()),
		zap.String("target", inputs.Target.Oid()),
		zap.String("split", inputs.Split.Oid()))

	if inputs.Split.Oid() == inputs.Target.Oid() {
		return nil, ErrAlreadyAncestor
	}
	if inputs.Split.Oid() == inputs.Current.Oid() {
		return nil, ErrFastForwardOnly
	}

	return inputs, nil
}

func (i *Inputs) loadBranch(name string) (*database.Commit, error) {
	oid, err := i.repo.Refs.ReadBranch(name)
	if err != nil {
		return nil, err
	}
	return i.repo.Database.LoadCommit(oid)
}
