package merge

import (
	"testing"
	"time"

	"gitlet/lib/repository"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	t     *testing.T
	fs    billy.Filesystem
	repo  *repository.Repository
	clock time.Time
}

func newFixture(t *testing.T) *fixture {
	fs := memfs.New()
	repo := repository.NewRepository(fs, nil)
	_, err := repo.Init()
	require.NoError(t, err)
	require.NoError(t, repo.Open())
	return &fixture{t: t, fs: fs, repo: repo, clock: time.Unix(1700000000, 0).UTC()}
}

func (f *fixture) write(path, content string) {
	f.t.Helper()
	require.NoError(f.t, util.WriteFile(f.fs, path, []byte(content), 0644))
}

func (f *fixture) read(path string) string {
	f.t.Helper()
	data, err := util.ReadFile(f.fs, path)
	require.NoError(f.t, err)
	return string(data)
}

func (f *fixture) exists(path string) bool {
	_, err := f.fs.Stat(path)
	return err == nil
}

func (f *fixture) add(paths ...string) {
	f.t.Helper()
	for _, p := range paths {
		require.NoError(f.t, f.repo.Add(p))
	}
}

func (f *fixture) rm(path string) {
	f.t.Helper()
	require.NoError(f.t, f.repo.Remove(path))
}

func (f *fixture) commit(message string) {
	f.t.Helper()
	f.clock = f.clock.Add(time.Minute)
	_, err := f.repo.Commit(message, f.clock)
	require.NoError(f.t, err)
}

func (f *fixture) branch(name string) {
	f.t.Helper()
	require.NoError(f.t, f.repo.Branch(name))
}

func (f *fixture) checkout(name string) {
	f.t.Helper()
	require.NoError(f.t, f.repo.CheckoutBranch(name))
}

func (f *fixture) headOid() string {
	f.t.Helper()
	oid, err := f.repo.Refs.ReadHead()
	require.NoError(f.t, err)
	return oid
}

func (f *fixture) merge(target string) (*Result, error) {
	f.clock = f.clock.Add(time.Minute)
	return Merge(f.repo, target, f.clock)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name                   string
		split, current, target string
		expected               action
	}{
		{"same on both sides", "s", "x", "x", unchanged},
		{"changed only on the current branch", "s", "c", "s", unchanged},
		{"removed only on the current branch", "s", "", "s", unchanged},
		{"added only on the current branch", "", "c", "", unchanged},
		{"changed only on the target branch", "s", "s", "t", overwrite},
		{"added only on the target branch", "", "", "t", write},
		{"removed only on the target branch", "s", "s", "", remove},
		{"changed differently on both", "s", "c", "t", conflict},
		{"changed on one side and removed on the other", "s", "c", "", conflict},
		{"added differently on both", "", "c", "t", conflict},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, classify(c.split, c.current, c.target))
		})
	}
}

func TestMergePreconditions(t *testing.T) {
	t.Run("refuses with staged changes", func(t *testing.T) {
		f := newFixture(t)
		f.branch("other")
		f.write("a.txt", "a")
		f.add("a.txt")

		_, err := f.merge("other")
		assert.Equal(t, ErrUncommittedChanges, err)
	})

	t.Run("refuses an unknown branch", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.merge("nope")
		assert.Equal(t, repository.ErrBranchNotExist, err)
	})

	t.Run("refuses to merge a branch with itself", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.merge("master")
		assert.Equal(t, ErrSelfMerge, err)
	})

	t.Run("refuses a branch that is already an ancestor", func(t *testing.T) {
		f := newFixture(t)
		f.branch("old")
		f.write("a.txt", "a")
		f.add("a.txt")
		f.commit("add a")
		before := f.headOid()

		_, err := f.merge("old")
		assert.Equal(t, ErrAlreadyAncestor, err)
		assert.Equal(t, before, f.headOid())
	})

	t.Run("refuses to fast-forward", func(t *testing.T) {
		f := newFixture(t)
		f.branch("ahead")
		f.checkout("ahead")
		f.write("a.txt", "a")
		f.add("a.txt")
		f.commit("add a")
		f.checkout("master")
		before := f.headOid()

		_, err := f.merge("ahead")
		assert.Equal(t, ErrFastForwardOnly, err)
		assert.Equal(t, before, f.headOid())
		assert.False(t, f.exists("a.txt"))
	})
}

func TestMergeResolve(t *testing.T) {
	// split point: file.txt = a, keep.txt, gone.txt
	// master:      file.txt = b, mine.txt
	// other:       file.txt = c, keep.txt changed, gone.txt removed, theirs.txt
	setUp := func(t *testing.T) *fixture {
		f := newFixture(t)
		f.write("file.txt", "a\n")
		f.write("keep.txt", "keep\n")
		f.write("gone.txt", "gone\n")
		f.add("file.txt", "keep.txt", "gone.txt")
		f.commit("base")
		f.branch("other")

		f.write("file.txt", "b\n")
		f.write("mine.txt", "mine\n")
		f.add("file.txt", "mine.txt")
		f.commit("master change")

		f.checkout("other")
		f.write("file.txt", "c\n")
		f.write("keep.txt", "kept\n")
		f.write("theirs.txt", "theirs\n")
		f.add("file.txt", "keep.txt", "theirs.txt")
		f.rm("gone.txt")
		f.commit("other change")
		f.checkout("master")
		return f
	}

	t.Run("writes conflict markers and commits with two parents", func(t *testing.T) {
		f := setUp(t)
		masterTip := f.headOid()
		otherTip, err := f.repo.Refs.ReadBranch("other")
		require.NoError(t, err)

		result, err := f.merge("other")
		require.NoError(t, err)

		assert.Equal(t, []string{"file.txt"}, result.Conflicts)
		assert.Equal(t, "<<<<<<< HEAD\nb\n=======\nc\n>>>>>>>\n", f.read("file.txt"))
		assert.Equal(t, []string{masterTip, otherTip}, result.Commit.Parents)
		assert.Equal(t, "Merged other into master.", result.Commit.Message())
		assert.Equal(t, result.Commit.Oid(), f.headOid())
	})

	t.Run("applies the target's writes, overwrites and removals", func(t *testing.T) {
		f := setUp(t)

		result, err := f.merge("other")
		require.NoError(t, err)

		assert.Equal(t, "kept\n", f.read("keep.txt"))
		assert.Equal(t, "theirs\n", f.read("theirs.txt"))
		assert.Equal(t, "mine\n", f.read("mine.txt"))
		assert.False(t, f.exists("gone.txt"))

		tree := result.Commit.Tree()
		assert.Equal(t, []string{"file.txt", "keep.txt", "mine.txt", "theirs.txt"}, tree.Paths())
		assert.True(t, f.repo.Stage.IsEmpty())
	})

	t.Run("leaves everything alone when an untracked file is in the way", func(t *testing.T) {
		f := setUp(t)
		f.write("theirs.txt", "untracked\n")
		before := f.headOid()

		_, err := f.merge("other")
		assert.Equal(t, repository.ErrUntrackedFileInWay, err)

		assert.Equal(t, "untracked\n", f.read("theirs.txt"))
		assert.Equal(t, "b\n", f.read("file.txt"))
		assert.Equal(t, "keep\n", f.read("keep.txt"))
		assert.True(t, f.exists("gone.txt"))
		assert.Equal(t, before, f.headOid())
	})
}
