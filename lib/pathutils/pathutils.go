package pathutils

import (
	"path"
	"strings"
)

// Ascend lists p and each of its parents, deepest first.
func Ascend(p string) []string {
	var dirs []string
	for p != "." && p != "/" && p != "" {
		dirs = append(dirs, p)
		p = path.Dir(p)
	}
	return dirs
}

// Descend lists the parents of p and p itself, shallowest first.
func Descend(p string) []string {
	var dirs []string
	for p != "." && p != "/" && p != "" {
		dirs = append([]string{p}, dirs...)
		p = path.Dir(p)
	}
	return dirs
}

// Clean turns a user supplied path into the slash separated form used as a
// key in trees and stages.
func Clean(p string) string {
	return strings.TrimPrefix(path.Clean(strings.ReplaceAll(p, "\\", "/")), "./")
}
