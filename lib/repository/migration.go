package repository

import (
	"path"
	"sort"

	"gitlet/lib/database"
	"gitlet/lib/pathutils"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type changeType string

const (
	create changeType = "create"
	update changeType = "update"
	remove changeType = "remove"
)

type plan struct {
	path string
	oid  string
}

// Migration moves the working tree from one set of tracked files to
// another. Every check runs before the first file is touched.
type Migration struct {
	repo    *Repository
	diff    map[string][2]string
	Changes map[changeType][]plan
	Errors  *multierror.Error
	pending map[string]*database.Blob
	removed map[string]bool
}

func NewMigration(repository *Repository, diff map[string][2]string) *Migration {
	return &Migration{
		repo: repository,
		diff: diff,
		Changes: map[changeType][]plan{
			create: {},
			update: {},
			remove: {},
		},
		pending: map[string]*database.Blob{},
	}
}

// Include supplies content for a blob the migration writes before it has
// been stored.
func (m *Migration) Include(blob *database.Blob) {
	m.pending[m.repo.Database.HashObject(blob)] = blob
}

func (m *Migration) ApplyChanges() error {
	if err := m.planChanges(); err != nil {
		return err
	}
	m.repo.Logger.Debug("applying migration",
		zap.Int("create", len(m.Changes[create])),
		zap.Int("update", len(m.Changes[update])),
		zap.Int("remove", len(m.Changes[remove])))
	return m.repo.Workspace.ApplyMigration(m)
}

func (m *Migration) BlobData(oid string) ([]byte, error) {
	if blob, ok := m.pending[oid]; ok {
		return blob.Data(), nil
	}
	blob, err := m.repo.Database.LoadBlob(oid)
	if err != nil {
		return nil, err
	}
	return blob.Data(), nil
}

func (m *Migration) planChanges() error {
	paths := make([]string, 0, len(m.diff))
	m.removed = map[string]bool{}
	for p, diff := range m.diff {
		paths = append(paths, p)
		if diff[0] != "" && diff[1] == "" {
			m.removed[p] = true
		}
	}
	sort.Strings(paths)

	for _, p := range paths {
		diff := m.diff[p]
		m.recordChange(p, diff[0], diff[1])
	}
	return m.collectErrors()
}

func (m *Migration) recordChange(p, oldOid, newOid string) {
	switch {
	case oldOid == "" && newOid == "":
		return
	case oldOid == "":
		m.checkForUntracked(p)
		m.Changes[create] = append(m.Changes[create], plan{path: p, oid: newOid})
	case newOid == "":
		m.Changes[remove] = append(m.Changes[remove], plan{path: p})
	default:
		m.Changes[update] = append(m.Changes[update], plan{path: p, oid: newOid})
	}
}

// checkForUntracked flags a path the migration would create when the
// working tree holds a file there, or at one of its parent directories,
// that the migration does not remove itself. A directory in the way only
// blocks if something under it survives the removals.
func (m *Migration) checkForUntracked(p string) {
	for _, parent := range pathutils.Descend(path.Dir(p)) {
		info, err := m.repo.Workspace.Stat(parent)
		if err != nil {
			return
		}
		if !info.IsDir() {
			if !m.removed[parent] {
				m.inTheWay(parent)
			}
			return
		}
	}

	info, err := m.repo.Workspace.Stat(p)
	if err != nil {
		return
	}
	if !info.IsDir() {
		m.inTheWay(p)
		return
	}

	files, err := m.repo.Workspace.FilesUnder(p)
	if err != nil {
		m.inTheWay(p)
		return
	}
	for _, file := range files {
		if !m.removed[file] {
			m.inTheWay(file)
		}
	}
}

func (m *Migration) inTheWay(p string) {
	m.Errors = multierror.Append(m.Errors, errors.Errorf("untracked file in the way: %s", p))
}

func (m *Migration) collectErrors() error {
	if m.Errors.ErrorOrNil() == nil {
		return nil
	}
	m.repo.Logger.Debug("migration refused", zap.Error(m.Errors))
	return ErrUntrackedFileInWay
}
