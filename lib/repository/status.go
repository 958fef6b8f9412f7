package repository

import (
	"sort"

	"gitlet/lib"
	"gitlet/lib/database"

	"github.com/samber/lo"
)

type ChangeType int

const (
	Modified ChangeType = iota
	Deleted
)

func (c ChangeType) String() string {
	if c == Deleted {
		return "deleted"
	}
	return "modified"
}

type Status struct {
	repo             *Repository
	CurrentBranch    string
	Branches         []string
	Staged           []string
	Removed          []string
	WorkspaceChanges *lib.SortedMap[ChangeType]
	Untracked        []string
	headTree         database.Tree
}

func NewStatus(repo *Repository) (*Status, error) {
	s := &Status{
		repo:             repo,
		WorkspaceChanges: lib.NewSortedMap[ChangeType](),
	}

	var err error
	if s.CurrentBranch, err = repo.Refs.CurrentBranch(); err != nil {
		return nil, err
	}
	if s.Branches, err = repo.Refs.ListBranches(); err != nil {
		return nil, err
	}
	head, err := repo.HeadCommit()
	if err != nil {
		return nil, err
	}
	s.headTree = head.Tree()

	s.Staged = repo.Stage.Additions.Paths()
	s.Removed = repo.Stage.Removals.Paths()

	files, err := repo.Workspace.ListFiles()
	if err != nil {
		return nil, err
	}
	if err := s.checkTrackedFiles(); err != nil {
		return nil, err
	}
	s.collectUntracked(files)

	return s, nil
}

// checkTrackedFiles records files whose working copy has drifted from what
// the next commit would record.
func (s *Status) checkTrackedFiles() error {
	additions := s.repo.Stage.Additions
	removals := s.repo.Stage.Removals

	paths := database.TreeUnion(s.headTree, database.Tree(lo.SliceToMap(additions.Paths(), func(p string) (string, string) {
		return p, ""
	})))

	for _, path := range paths {
		expected, staged := additions.Get(path)
		if !staged {
			if removals.Has(path) {
				continue
			}
			expected = s.headTree[path]
		}

		if !s.repo.Workspace.IsFile(path) {
			s.WorkspaceChanges.Set(path, Deleted)
			continue
		}
		oid, err := s.hashWorkspaceFile(path)
		if err != nil {
			return err
		}
		if oid != expected {
			s.WorkspaceChanges.Set(path, Modified)
		}
	}
	return nil
}

func (s *Status) collectUntracked(files []string) {
	additions := s.repo.Stage.Additions
	removals := s.repo.Stage.Removals

	s.Untracked = lo.Filter(files, func(path string, _ int) bool {
		if additions.Has(path) {
			return false
		}
		_, tracked := s.headTree[path]
		return !tracked || removals.Has(path)
	})
	sort.Strings(s.Untracked)
}

func (s *Status) hashWorkspaceFile(path string) (string, error) {
	data, err := s.repo.Workspace.ReadFile(path)
	if err != nil {
		return "", err
	}
	return s.repo.Database.HashObject(database.NewBlob(path, data)), nil
}
