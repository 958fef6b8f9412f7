package repository

import (
	"gitlet/lib/database"

	"github.com/samber/lo"
)

type RevList struct {
	repo *Repository
}

func NewRevList(repo *Repository) *RevList {
	return &RevList{
		repo: repo,
	}
}

// History walks first parents from start back to the root commit.
func (r *RevList) History(start *database.Commit) ([]*database.Commit, error) {
	commits := []*database.Commit{}
	seen := map[string]bool{}

	for commit := start; commit != nil; {
		if seen[commit.Oid()] {
			break
		}
		seen[commit.Oid()] = true
		commits = append(commits, commit)

		parent := commit.Parent()
		if parent == "" {
			break
		}
		next, err := r.repo.Database.LoadCommit(parent)
		if err != nil {
			return nil, err
		}
		commit = next
	}
	return commits, nil
}

// All returns every commit ever made, in no particular order.
func (r *RevList) All() ([]*database.Commit, error) {
	return r.repo.Database.Commits()
}

// Find returns the ids of every commit whose message is exactly message.
func (r *RevList) Find(message string) ([]string, error) {
	commits, err := r.All()
	if err != nil {
		return nil, err
	}

	matches := lo.FilterMap(commits, func(c *database.Commit, _ int) (string, bool) {
		return c.Oid(), c.Message() == message
	})
	if len(matches) == 0 {
		return nil, ErrNoCommitWithMessage
	}
	return matches, nil
}
