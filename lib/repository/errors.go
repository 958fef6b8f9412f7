package repository

// UserError is a failure caused by the user's input or by the state of the
// repository. Its message is shown to the user as is.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

var (
	ErrAlreadyInitialized  = &UserError{Message: "A Gitlet version-control system already exists in the current directory."}
	ErrNotInitialized      = &UserError{Message: "Not in an initialized Gitlet directory."}
	ErrFileNotExist        = &UserError{Message: "File does not exist."}
	ErrEmptyMessage        = &UserError{Message: "Please enter a commit message."}
	ErrNothingToCommit     = &UserError{Message: "No changes added to the commit."}
	ErrNothingToRemove     = &UserError{Message: "No reason to remove the file."}
	ErrBranchExists        = &UserError{Message: "A branch with that name already exists."}
	ErrBranchNotExist      = &UserError{Message: "A branch with that name does not exist."}
	ErrNoSuchBranch        = &UserError{Message: "No such branch exists."}
	ErrAlreadyOnBranch     = &UserError{Message: "No need to checkout the current branch."}
	ErrRemoveCurrentBranch = &UserError{Message: "Cannot remove the current branch."}
	ErrUntrackedFileInWay  = &UserError{Message: "There is an untracked file in the way; delete it, or add and commit it first."}
	ErrCommitNotFound      = &UserError{Message: "No commit with that id exists."}
	ErrFileNotInCommit     = &UserError{Message: "File does not exist in that commit."}
	ErrNoCommitWithMessage = &UserError{Message: "Found no commit with that message."}
)

type InvalidBranchError struct {
	msg string
}

func (e *InvalidBranchError) Error() string {
	return e.msg
}
