package merge

import (
	"gitlet/lib/database"

	"github.com/pkg/errors"
)

// SplitPoint finds the merge base of two commits from the distance of each
// ancestor to either tip. Parents are followed breadth first, merge parents
// included.
type SplitPoint struct {
	db  *database.Database
	one string
	two string
}

func NewSplitPoint(db *database.Database, one, two string) *SplitPoint {
	return &SplitPoint{
		db:  db,
		one: one,
		two: two,
	}
}

// Find walks the ancestors of one in breadth first order and keeps the one
// closest to two. Ties keep the first found, which is the one closest to
// one. Histories with several crossing merges may have more than one best
// common ancestor, and this rule picks one of them without further checks.
func (sp *SplitPoint) Find() (*database.Commit, error) {
	order, _, err := sp.distances(sp.one)
	if err != nil {
		return nil, err
	}
	_, fromTwo, err := sp.distances(sp.two)
	if err != nil {
		return nil, err
	}

	best := ""
	for _, oid := range order {
		d, ok := fromTwo[oid]
		if !ok {
			continue
		}
		if best == "" || d < fromTwo[best] {
			best = oid
		}
	}
	if best == "" {
		return nil, errors.Errorf("no common ancestor of %s and %s", sp.one, sp.two)
	}
	return sp.db.LoadCommit(best)
}

// distances records the shortest number of parent edges from start to each
// of its ancestors, along with the order they were reached in.
func (sp *SplitPoint) distances(start string) ([]string, map[string]int, error) {
	dist := map[string]int{start: 0}
	order := []string{start}
	queue := []string{start}

	for len(queue) > 0 {
		oid := queue[0]
		queue = queue[1:]

		commit, err := sp.db.LoadCommit(oid)
		if err != nil {
			return nil, nil, err
		}
		for _, parent := range commit.Parents {
			if _, seen := dist[parent]; seen {
				continue
			}
			dist[parent] = dist[oid] + 1
			order = append(order, parent)
			queue = append(queue, parent)
		}
	}
	return order, dist, nil
}
