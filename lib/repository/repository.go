package repository

import (
	"os"
	"path"
	"time"

	"gitlet/lib/database"
	"gitlet/lib/stage"

	"github.com/go-git/go-billy/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const GIT_DIR = ".gitlet"

type Repository struct {
	fs        billy.Filesystem
	Database  *database.Database
	Stage     *stage.Area
	Refs      *Refs
	Workspace *Workspace
	Logger    *zap.Logger
}

// NewRepository wires the components of the repository rooted at fs.
// Nothing is read until Open or Init.
func NewRepository(fs billy.Filesystem, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{
		fs:        fs,
		Database:  database.NewDatabase(fs, path.Join(GIT_DIR, "objects"), logger),
		Stage:     stage.NewArea(fs, GIT_DIR, logger),
		Refs:      NewRefs(fs, GIT_DIR, logger),
		Workspace: NewWorkspace(fs),
		Logger:    logger,
	}
}

func (r *Repository) GitPath() string {
	return GIT_DIR
}

func (r *Repository) IsInitialized() bool {
	info, err := r.fs.Stat(GIT_DIR)
	return err == nil && info.IsDir()
}

// Init creates the repository layout, the root commit and the master branch.
func (r *Repository) Init() (*database.Commit, error) {
	if r.IsInitialized() {
		return nil, ErrAlreadyInitialized
	}

	for _, dir := range []string{path.Join(GIT_DIR, "objects"), path.Join(GIT_DIR, HeadsDir())} {
		if err := r.fs.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, errors.Wrapf(err, "creating %s", dir)
		}
	}

	root := database.NewInitialCommit()
	if err := r.Database.Store(root); err != nil {
		return nil, err
	}
	if err := r.Refs.CreateBranch(DEFAULT_BRANCH, root.Oid()); err != nil {
		return nil, err
	}
	if err := r.Refs.SetHead(DEFAULT_BRANCH); err != nil {
		return nil, err
	}
	if err := r.Stage.WriteUpdates(); err != nil {
		return nil, err
	}

	r.Logger.Debug("initialized repository", zap.String("root", root.Oid()))
	return root, nil
}

// Open loads the persisted stages of an existing repository.
func (r *Repository) Open() error {
	if !r.IsInitialized() {
		return ErrNotInitialized
	}
	return r.Stage.Load()
}

func (r *Repository) HeadCommit() (*database.Commit, error) {
	oid, err := r.Refs.ReadHead()
	if err != nil {
		return nil, err
	}
	return r.Database.LoadCommit(oid)
}

// WriteCommit stores a commit on top of the current branch, moves the
// branch to it and empties both stages.
func (r *Repository) WriteCommit(parents []string, tree database.Tree, now time.Time, message string) (*database.Commit, error) {
	branch, err := r.Refs.CurrentBranch()
	if err != nil {
		return nil, err
	}

	commit := database.NewCommit(parents, tree, now, message)
	if err := r.Database.Store(commit); err != nil {
		return nil, err
	}

	r.Stage.Clear()
	if err := r.Stage.WriteUpdates(); err != nil {
		return nil, err
	}
	if err := r.Refs.UpdateBranch(branch, commit.Oid()); err != nil {
		return nil, err
	}

	r.Logger.Debug("wrote commit",
		zap.String("branch", branch),
		zap.String("oid", commit.Oid()),
		zap.Strings("parents", parents))
	return commit, nil
}

func (r *Repository) Migration(diff map[string][2]string) *Migration {
	return NewMigration(r, diff)
}

func (r *Repository) Status() (*Status, error) {
	return NewStatus(r)
}
