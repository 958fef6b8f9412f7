package repository

// Branch creates branchName at the current HEAD commit without switching to
// it.
func (r *Repository) Branch(branchName string) error {
	if r.Refs.BranchExists(branchName) {
		return ErrBranchExists
	}
	oid, err := r.Refs.ReadHead()
	if err != nil {
		return err
	}
	return r.Refs.CreateBranch(branchName, oid)
}

func (r *Repository) RemoveBranch(branchName string) error {
	if !r.Refs.BranchExists(branchName) {
		return ErrBranchNotExist
	}
	current, err := r.Refs.CurrentBranch()
	if err != nil {
		return err
	}
	if current == branchName {
		return ErrRemoveCurrentBranch
	}
	_, err = r.Refs.DeleteBranch(branchName)
	return err
}
