package repository

import (
	"bufio"
	"bytes"
	"os"
	"path"
	"sort"
	"strings"

	"gitlet/lib/pathutils"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/pkg/errors"
)

const IGNORE_FILE = ".gitletignore"

var IGNORE = map[string]struct{}{
	".":     {},
	"..":    {},
	GIT_DIR: {},
}

// Workspace is the user's working tree. Paths are slash separated and
// relative to its root.
type Workspace struct {
	fs      billy.Filesystem
	matcher gitignore.Matcher
}

func NewWorkspace(fs billy.Filesystem) *Workspace {
	return &Workspace{
		fs: fs,
	}
}

// ListFiles returns every regular file in the working tree that is not
// ignored, sorted.
func (w *Workspace) ListFiles() ([]string, error) {
	matcher, err := w.ignoreMatcher()
	if err != nil {
		return nil, err
	}

	var files []string
	if err := w.listDir(".", matcher, &files); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func (w *Workspace) listDir(dirname string, matcher gitignore.Matcher, files *[]string) error {
	entries, err := w.fs.ReadDir(dirname)
	if err != nil {
		return errors.Wrapf(err, "listing %s", dirname)
	}

	for _, entry := range entries {
		if _, exists := IGNORE[entry.Name()]; exists {
			continue
		}
		relative := path.Join(dirname, entry.Name())
		isDir := entry.IsDir()
		if matcher.Match(strings.Split(relative, "/"), isDir) {
			continue
		}
		if isDir {
			if err := w.listDir(relative, matcher, files); err != nil {
				return err
			}
		} else if entry.Mode().IsRegular() {
			*files = append(*files, relative)
		}
	}
	return nil
}

func (w *Workspace) ignoreMatcher() (gitignore.Matcher, error) {
	if w.matcher != nil {
		return w.matcher, nil
	}

	var patterns []gitignore.Pattern
	data, err := util.ReadFile(w.fs, IGNORE_FILE)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "reading %s", IGNORE_FILE)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}

	w.matcher = gitignore.NewMatcher(patterns)
	return w.matcher, nil
}

func (w *Workspace) ReadFile(filePath string) ([]byte, error) {
	data, err := util.ReadFile(w.fs, filePath)
	if err != nil {
		if os.IsPermission(err) {
			return nil, errors.Errorf("open('%s'): Permission denied", filePath)
		}
		return nil, err
	}
	return data, nil
}

func (w *Workspace) Stat(filePath string) (os.FileInfo, error) {
	return w.fs.Stat(filePath)
}

// FilesUnder lists every file below dir, ignored ones included.
func (w *Workspace) FilesUnder(dir string) ([]string, error) {
	var files []string
	err := util.Walk(w.fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, pathutils.Clean(p))
		}
		return nil
	})
	return files, err
}

func (w *Workspace) IsFile(filePath string) bool {
	info, err := w.fs.Stat(filePath)
	return err == nil && info.Mode().IsRegular()
}

// WriteFile replaces an empty directory left at filePath.
func (w *Workspace) WriteFile(filePath string, data []byte) error {
	if info, err := w.fs.Stat(filePath); err == nil && info.IsDir() {
		if err := w.fs.Remove(filePath); err != nil {
			return errors.Wrapf(err, "replacing directory %s", filePath)
		}
	}
	if dir := path.Dir(filePath); dir != "." {
		if err := w.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "creating %s", dir)
		}
	}
	if err := util.WriteFile(w.fs, filePath, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", filePath)
	}
	return nil
}

// RemoveFile deletes filePath if present, then any parent directories it
// leaves empty.
func (w *Workspace) RemoveFile(filePath string) error {
	if err := w.fs.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "removing %s", filePath)
	}

	for _, dir := range pathutils.Ascend(path.Dir(filePath)) {
		entries, err := w.fs.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			break
		}
		if err := w.fs.Remove(dir); err != nil {
			break
		}
	}
	return nil
}

func (w *Workspace) ApplyMigration(m *Migration) error {
	for _, p := range m.Changes[remove] {
		if err := w.RemoveFile(p.path); err != nil {
			return err
		}
	}

	for _, action := range []changeType{update, create} {
		for _, p := range m.Changes[action] {
			data, err := m.BlobData(p.oid)
			if err != nil {
				return err
			}
			if err := w.WriteFile(p.path, data); err != nil {
				return err
			}
		}
	}
	return nil
}
