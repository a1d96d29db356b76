package models

// FileRef addresses a file on a branch of a repository.
type FileRef struct {
	Owner  string
	Repo   string
	Branch string
	Path   string
}

// FileAtHead is the branch head revision and, if the file exists there, its content.
type FileAtHead struct {
	HeadRevisionID string
	Content        *string
}

// FileChange replaces the content of a single file, guarded by the expected head revision.
type FileChange struct {
	FileRef
	ExpectedHeadRevisionID string
	Content                string
	Message                string
}
