package merge

import "gitlet/lib/repository"

const CONFLICT_MESSAGE = "Encountered a merge conflict."

var (
	ErrUncommittedChanges = &repository.UserError{Message: "You have uncommitted changes."}
	ErrSelfMerge          = &repository.UserError{Message: "Cannot merge a branch with itself."}
	ErrAlreadyAncestor    = &repository.UserError{Message: "Given branch is an ancestor of the current branch."}
	ErrFastForwardOnly    = &repository.UserError{Message: "Current branch fast-forwarded."}
)
