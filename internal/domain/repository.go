package domain

// User is the GitHub account that owns a repository or opened an issue.
type User struct {
	Login     string `json:"login" yaml:"login"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
}

// RepositoryInfo is the repository metadata shown in the browser header.
// It is replaced wholesale on every fetch and never mutated locally.
// Fields are ordered to minimize memory padding.
type RepositoryInfo struct {
	Owner       User   `json:"owner" yaml:"owner"`
	FullName    string `json:"full_name" yaml:"full_name"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	HTMLURL     string `json:"html_url" yaml:"html_url"`
}
