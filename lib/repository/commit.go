package repository

import (
	"strings"
	"time"

	"gitlet/lib/database"
)

// Commit snapshots HEAD's tree with the staged additions and removals
// applied.
func (r *Repository) Commit(message string, now time.Time) (*database.Commit, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}
	if r.Stage.IsEmpty() {
		return nil, ErrNothingToCommit
	}

	head, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}

	tree := head.Tree().Copy()
	r.Stage.Additions.Each(func(path, oid string) {
		tree[path] = oid
	})
	r.Stage.Removals.Each(func(path, _ string) {
		delete(tree, path)
	})

	return r.WriteCommit([]string{head.Oid()}, tree, now, message)
}
