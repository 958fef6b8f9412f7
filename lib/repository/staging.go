package repository

import (
	"os"

	"gitlet/lib/database"
	"gitlet/lib/pathutils"

	"go.uber.org/zap"
)

// Add stages the working copy of path. Content identical to HEAD's only
// cancels whatever was pending for the path.
func (r *Repository) Add(path string) error {
	path = pathutils.Clean(path)

	if !r.Workspace.IsFile(path) {
		return ErrFileNotExist
	}
	data, err := r.Workspace.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotExist
		}
		return err
	}

	head, err := r.HeadCommit()
	if err != nil {
		return err
	}

	blob := database.NewBlob(path, data)
	oid := r.Database.HashObject(blob)

	if head.Tree()[path] == oid {
		r.Stage.Unstage(path)
		r.Logger.Debug("add matches HEAD", zap.String("path", path))
		return r.Stage.WriteUpdates()
	}

	if err := r.Database.Store(blob); err != nil {
		return err
	}
	r.Stage.StageAddition(path, oid)
	r.Logger.Debug("staged addition", zap.String("path", path), zap.String("oid", oid))
	return r.Stage.WriteUpdates()
}

// Remove unstages a pending addition, or stages the removal of a file
// tracked by HEAD and deletes it from the working tree.
func (r *Repository) Remove(path string) error {
	path = pathutils.Clean(path)

	if r.Stage.Additions.Delete(path) {
		r.Logger.Debug("unstaged addition", zap.String("path", path))
		return r.Stage.WriteUpdates()
	}

	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	oid, tracked := head.Tree()[path]
	if !tracked {
		return ErrNothingToRemove
	}

	r.Stage.StageRemoval(path, oid)
	if err := r.Stage.WriteUpdates(); err != nil {
		return err
	}
	r.Logger.Debug("staged removal", zap.String("path", path))
	return r.Workspace.RemoveFile(path)
}
