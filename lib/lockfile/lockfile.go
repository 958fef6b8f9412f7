package lockfile

import (
	"os"

	"github.com/go-git/go-billy/v5"
)

type LockDeniedError struct {
	Message string
}

func (e *LockDeniedError) Error() string {
	return e.Message
}

type MissingParentError struct {
	Message string
}

func (e *MissingParentError) Error() string {
	return e.Message
}

type NoPermissionError struct {
	Message string
}

func (e *NoPermissionError) Error() string {
	return e.Message
}

type StaleLockError struct {
	Message string
}

func (e *StaleLockError) Error() string {
	return e.Message
}

// Lockfile replaces a file atomically: the new content goes to
// "<file>.lock", which is renamed over the file on Commit.
type Lockfile struct {
	fs       billy.Filesystem
	filePath string
	lockPath string
	Lock     billy.File
}

func NewLockfile(fs billy.Filesystem, filePath string) *Lockfile {
	return &Lockfile{
		fs:       fs,
		filePath: filePath,
		lockPath: filePath + ".lock",
	}
}

func (lf *Lockfile) HoldForUpdate() error {
	if lf.Lock == nil {
		lock, err := lf.fs.OpenFile(lf.lockPath, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			if os.IsExist(err) {
				return &LockDeniedError{Message: err.Error()}
			}
			if os.IsNotExist(err) {
				return &MissingParentError{Message: err.Error()}
			}
			if os.IsPermission(err) {
				return &NoPermissionError{Message: err.Error()}
			}
			return err
		}
		lf.Lock = lock
	}
	return nil
}

func (lf *Lockfile) Write(data []byte) error {
	if err := lf.raiseOnStaleLock(); err != nil {
		return err
	}
	_, err := lf.Lock.Write(data)
	return err
}

func (lf *Lockfile) Commit() error {
	if err := lf.raiseOnStaleLock(); err != nil {
		return err
	}
	if err := lf.Lock.Close(); err != nil {
		return err
	}
	err := lf.fs.Rename(lf.lockPath, lf.filePath)
	if err == nil {
		lf.Lock = nil
	}
	return err
}

func (lf *Lockfile) Rollback() error {
	if err := lf.raiseOnStaleLock(); err != nil {
		return err
	}
	if err := lf.Lock.Close(); err != nil {
		return err
	}
	if err := lf.fs.Remove(lf.lockPath); err != nil {
		return err
	}
	lf.Lock = nil

	return nil
}

func (lf *Lockfile) raiseOnStaleLock() error {
	if lf.Lock == nil {
		return &StaleLockError{Message: "Not holding lock on file: " + lf.lockPath}
	}
	return nil
}
