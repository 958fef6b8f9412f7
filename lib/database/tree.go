package database

import (
	"sort"

	"github.com/samber/lo"
)

// Tree maps a working tree path to the blob id stored for it.
type Tree map[string]string

func (t Tree) Paths() []string {
	paths := lo.Keys(t)
	sort.Strings(paths)
	return paths
}

func (t Tree) Copy() Tree {
	return lo.Assign(t)
}

// TreeUnion returns every path tracked by any of the trees, sorted.
func TreeUnion(trees ...Tree) []string {
	paths := lo.Uniq(lo.FlatMap(trees, func(t Tree, _ int) []string {
		return lo.Keys(t)
	}))
	sort.Strings(paths)
	return paths
}
