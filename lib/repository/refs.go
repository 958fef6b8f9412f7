package repository

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"gitlet/lib/lockfile"
	"gitlet/lib/pathutils"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const HEAD = "HEAD"
const DEFAULT_BRANCH = "master"

const REFS_DIR = "refs"

func HeadsDir() string {
	return path.Join(REFS_DIR, "heads")
}

// Refs stores one file per branch holding its commit id, and a HEAD file
// holding the name of the active branch.
type Refs struct {
	fs        billy.Filesystem
	pathname  string
	headsPath string
	logger    *zap.Logger
}

func NewRefs(fs billy.Filesystem, pathname string, logger *zap.Logger) *Refs {
	return &Refs{
		fs:        fs,
		pathname:  pathname,
		headsPath: path.Join(pathname, HeadsDir()),
		logger:    logger,
	}
}

func (r *Refs) CurrentBranch() (string, error) {
	name, err := r.readRefFile(path.Join(r.pathname, HEAD))
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", errors.New("HEAD does not name a branch")
	}
	return name, nil
}

func (r *Refs) SetHead(branchName string) error {
	return r.updateRefFile(path.Join(r.pathname, HEAD), branchName)
}

// ReadHead returns the commit id the active branch points at.
func (r *Refs) ReadHead() (string, error) {
	branch, err := r.CurrentBranch()
	if err != nil {
		return "", err
	}
	oid, err := r.ReadBranch(branch)
	if err != nil {
		return "", err
	}
	if oid == "" {
		return "", errors.Errorf("branch %s has no commit", branch)
	}
	return oid, nil
}

// ReadBranch returns "" when the branch does not exist.
func (r *Refs) ReadBranch(branchName string) (string, error) {
	if !IsValidRef(branchName) {
		return "", nil
	}
	return r.readRefFile(path.Join(r.headsPath, branchName))
}

func (r *Refs) BranchExists(branchName string) bool {
	oid, err := r.ReadBranch(branchName)
	return err == nil && oid != ""
}

func (r *Refs) UpdateBranch(branchName, oid string) error {
	return r.updateRefFile(path.Join(r.headsPath, branchName), oid)
}

func (r *Refs) CreateBranch(branchName, startOid string) error {
	if !IsValidRef(branchName) {
		return &InvalidBranchError{
			msg: fmt.Sprintf("'%s' is not a valid branch name.", branchName),
		}
	}

	if r.BranchExists(branchName) {
		return ErrBranchExists
	}

	return r.updateRefFile(path.Join(r.headsPath, branchName), startOid)
}

func (r *Refs) DeleteBranch(branchName string) (string, error) {
	refPath := path.Join(r.headsPath, branchName)

	lock := lockfile.NewLockfile(r.fs, refPath)
	if err := lock.HoldForUpdate(); err != nil {
		return "", err
	}

	oid, err := r.readRefFile(refPath)
	if err != nil {
		lock.Rollback()
		return "", err
	}
	if err := r.fs.Remove(refPath); err != nil {
		lock.Rollback()
		return "", err
	}
	if err := lock.Rollback(); err != nil {
		return "", err
	}
	if err := r.deleteParentDirectories(refPath); err != nil {
		return "", err
	}
	r.logger.Debug("deleted branch", zap.String("branch", branchName), zap.String("oid", oid))
	return oid, nil
}

// ListBranches returns every branch name in sorted order.
func (r *Refs) ListBranches() ([]string, error) {
	var names []string

	err := util.Walk(r.fs, r.headsPath, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || strings.HasSuffix(p, ".lock") {
			return nil
		}
		names = append(names, strings.TrimPrefix(p, r.headsPath+"/"))
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}

func (r *Refs) deleteParentDirectories(refPath string) error {
	for _, dir := range pathutils.Ascend(path.Dir(refPath)) {
		if dir == r.headsPath || !strings.HasPrefix(dir, r.headsPath) {
			break
		}
		entries, err := r.fs.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			break
		}
		if err := r.fs.Remove(dir); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func (r *Refs) readRefFile(refPath string) (string, error) {
	data, err := util.ReadFile(r.fs, refPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "reading %s", refPath)
	}
	return strings.TrimSpace(string(data)), nil
}

func (r *Refs) updateRefFile(refPath, value string) error {
	lock := lockfile.NewLockfile(r.fs, refPath)

	for {
		err := lock.HoldForUpdate()
		if err != nil {
			if _, ok := err.(*lockfile.MissingParentError); ok {
				if err := r.fs.MkdirAll(path.Dir(refPath), 0755); err != nil {
					return err
				}
				continue
			}
			return err
		}
		break
	}

	if err := lock.Write([]byte(value + "\n")); err != nil {
		lock.Rollback()
		return err
	}
	if err := lock.Commit(); err != nil {
		return err
	}
	r.logger.Debug("updated ref", zap.String("ref", refPath), zap.String("value", value))
	return nil
}
