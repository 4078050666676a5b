package credential

import "time"

// User is the profile snapshot captured when the token was accepted.
type User struct {
	Login     string `yaml:"login" json:"login"`
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	AvatarURL string `yaml:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	HTMLURL   string `yaml:"html_url,omitempty" json:"html_url,omitempty"`
}

// Record is the on-disk credential file.
type Record struct {
	GitHubToken string    `yaml:"github_token,omitempty"`
	TokenSetAt  time.Time `yaml:"token_set_at,omitempty"`
	GitHubUser  *User     `yaml:"github_user,omitempty"`
}

// LoggedIn reports whether the record holds a token.
func (r Record) LoggedIn() bool {
	return r.GitHubToken != ""
}
