package database

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const InitialMessage = "initial commit"

type Commit struct {
	Parents   []string
	oid       string
	tree      Tree
	timestamp time.Time
	message   string
}

func NewCommit(parents []string, tree Tree, timestamp time.Time, message string) *Commit {
	if tree == nil {
		tree = Tree{}
	}
	return &Commit{
		Parents:   parents,
		tree:      tree,
		timestamp: timestamp,
		message:   message,
	}
}

// NewInitialCommit builds the root commit every repository starts from.
func NewInitialCommit() *Commit {
	return NewCommit(nil, Tree{}, time.Unix(0, 0).UTC(), InitialMessage)
}

func ParseCommit(reader *bufio.Reader) (*Commit, error) {
	tree := Tree{}
	parents := []string{}
	var timestamp time.Time
	var sawDate bool

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil, errors.New("commit has no message")
			}
			return nil, err
		}
		line = strings.TrimSuffix(line, "\n")

		if line == "" {
			break
		}

		parts := strings.SplitN(line, " ", 2)
		if len(parts) == 1 {
			return nil, errors.Errorf("malformed commit header %q", line)
		}
		switch parts[0] {
		case "blob":
			entry := strings.SplitN(parts[1], " ", 2)
			if len(entry) != 2 {
				return nil, errors.Errorf("malformed tree entry %q", line)
			}
			tree[entry[1]] = entry[0]
		case "parent":
			parents = append(parents, parts[1])
		case "date":
			timestamp, err = parseTimestamp(parts[1])
			if err != nil {
				return nil, err
			}
			sawDate = true
		default:
			return nil, errors.Errorf("unknown commit header %q", parts[0])
		}
	}
	if !sawDate {
		return nil, errors.New("commit has no date")
	}

	message, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	return NewCommit(parents, tree, timestamp, string(message)), nil
}

func parseTimestamp(value string) (time.Time, error) {
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return time.Time{}, errors.Errorf("malformed date %q", value)
	}
	seconds, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "malformed date %q", value)
	}
	zone, err := time.Parse("-0700", parts[1])
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "malformed date %q", value)
	}
	return time.Unix(seconds, 0).In(zone.Location()), nil
}

func (c *Commit) IsMerge() bool {
	return len(c.Parents) > 1
}

func (c *Commit) Type() string {
	return "commit"
}

func (c Commit) String() string {
	var b strings.Builder
	for _, p := range c.tree.Paths() {
		fmt.Fprintf(&b, "blob %s %s\n", c.tree[p], p)
	}
	for _, p := range c.Parents {
		fmt.Fprintf(&b, "parent %s\n", p)
	}
	fmt.Fprintf(&b, "date %d %s\n", c.timestamp.Unix(), c.timestamp.Format("-0700"))
	b.WriteString("\n")
	b.WriteString(c.message)

	return b.String()
}

func (c *Commit) Oid() string {
	return c.oid
}

func (c *Commit) SetOid(oid string) {
	c.oid = oid
}

func (c *Commit) Tree() Tree {
	return c.tree
}

func (c *Commit) Parent() string {
	if len(c.Parents) == 0 {
		return ""
	}
	return c.Parents[0]
}

func (c *Commit) Date() time.Time {
	return c.timestamp
}

func (c *Commit) Message() string {
	return c.message
}
