package repository

import (
	"gitlet/lib/database"
	"gitlet/lib/pathutils"

	"go.uber.org/zap"
)

// CheckoutFile writes path as recorded in commit into the working tree. The
// stage is left alone.
func (r *Repository) CheckoutFile(commit *database.Commit, path string) error {
	path = pathutils.Clean(path)

	oid, ok := commit.Tree()[path]
	if !ok {
		return ErrFileNotInCommit
	}
	blob, err := r.Database.LoadBlob(oid)
	if err != nil {
		return err
	}
	return r.Workspace.WriteFile(path, blob.Data())
}

func (r *Repository) CheckoutHeadFile(path string) error {
	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	return r.CheckoutFile(head, path)
}

func (r *Repository) CheckoutRevisionFile(expr, path string) error {
	commit, err := NewRevision(r, expr).Resolve()
	if err != nil {
		return err
	}
	return r.CheckoutFile(commit, path)
}

// CheckoutBranch replaces the working tree with the tip of branchName and
// makes it the active branch.
func (r *Repository) CheckoutBranch(branchName string) error {
	if !r.Refs.BranchExists(branchName) {
		return ErrNoSuchBranch
	}
	current, err := r.Refs.CurrentBranch()
	if err != nil {
		return err
	}
	if current == branchName {
		return ErrAlreadyOnBranch
	}

	oid, err := r.Refs.ReadBranch(branchName)
	if err != nil {
		return err
	}
	target, err := r.Database.LoadCommit(oid)
	if err != nil {
		return err
	}

	if err := r.CheckoutCommit(target); err != nil {
		return err
	}
	if err := r.Refs.SetHead(branchName); err != nil {
		return err
	}
	r.Logger.Debug("switched branch", zap.String("from", current), zap.String("to", branchName))
	return nil
}

// Reset checks out the commit expr names and moves the active branch to it.
func (r *Repository) Reset(expr string) error {
	target, err := NewRevision(r, expr).Resolve()
	if err != nil {
		return err
	}
	branch, err := r.Refs.CurrentBranch()
	if err != nil {
		return err
	}

	if err := r.CheckoutCommit(target); err != nil {
		return err
	}
	return r.Refs.UpdateBranch(branch, target.Oid())
}

// CheckoutCommit makes the working tree match target: files tracked only by
// HEAD are deleted and every file in target is written. The stage is
// cleared.
func (r *Repository) CheckoutCommit(target *database.Commit) error {
	head, err := r.HeadCommit()
	if err != nil {
		return err
	}

	current, next := head.Tree(), target.Tree()
	diff := map[string][2]string{}
	for _, path := range database.TreeUnion(current, next) {
		diff[path] = [2]string{current[path], next[path]}
	}

	if err := r.Migration(diff).ApplyChanges(); err != nil {
		return err
	}

	r.Stage.Clear()
	return r.Stage.WriteUpdates()
}
