package repository

import (
	"regexp"

	"gitlet/lib/database"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	INVALID_NAME = regexp.MustCompile(`^\.|\/\.|\.\.|^\/|\/$|\.lock$|@\{|[\x00-\x20*:?\[\\^~\x7f]`)
	FULL_OID     = regexp.MustCompile(`^[0-9a-f]{40}$`)
	OID_PREFIX   = regexp.MustCompile(`^[0-9a-f]+$`)
)

func IsValidRef(revision string) bool {
	return revision != "" && !INVALID_NAME.MatchString(revision)
}

// Revision resolves a full or abbreviated commit id.
type Revision struct {
	repo *Repository
	expr string
}

func NewRevision(repo *Repository, expr string) *Revision {
	return &Revision{
		repo: repo,
		expr: expr,
	}
}

// Resolve accepts a full id, or a prefix that matches exactly one commit.
// Anything else is ErrCommitNotFound.
func (r *Revision) Resolve() (*database.Commit, error) {
	if FULL_OID.MatchString(r.expr) {
		return r.loadCommit(r.expr)
	}
	if !OID_PREFIX.MatchString(r.expr) {
		return nil, ErrCommitNotFound
	}

	candidates, err := r.repo.Database.PrefixMatch(r.expr)
	if err != nil {
		return nil, err
	}
	commits := lo.Filter(candidates, func(oid string, _ int) bool {
		objectType, err := r.repo.Database.ObjectType(oid)
		return err == nil && objectType == "commit"
	})

	if len(commits) != 1 {
		r.repo.Logger.Debug("prefix did not resolve",
			zap.String("prefix", r.expr),
			zap.Strings("candidates", commits))
		return nil, ErrCommitNotFound
	}
	return r.loadCommit(commits[0])
}

func (r *Revision) loadCommit(oid string) (*database.Commit, error) {
	if !r.repo.Database.Exists(oid) {
		return nil, ErrCommitNotFound
	}
	objectType, err := r.repo.Database.ObjectType(oid)
	if err != nil {
		return nil, err
	}
	if objectType != "commit" {
		return nil, ErrCommitNotFound
	}
	return r.repo.Database.LoadCommit(oid)
}
