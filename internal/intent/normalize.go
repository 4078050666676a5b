package intent

import (
	"regexp"
	"strings"
)

var ownerRepoPattern = regexp.MustCompile(`([A-Za-z0-9_.-]+)/([A-Za-z0-9_.-]+)`)

// addressKeys are checked in order for a combined "owner/repo" value.
var addressKeys = []string{ParamOwner, ParamRepo, ParamRepository}

// Normalize returns a copy of params with owner and repo repaired.
//
// The first of owner, repo or repository holding a "/" is split into owner
// and repo. If either is still empty, the first owner/repo pair found in
// text is used for both. Keys stay absent when nothing is found, and owner
// never contains "/" afterwards.
func Normalize(params map[string]string, text string) map[string]string {
	out := make(map[string]string, len(params)+2)
	for k, v := range params {
		out[k] = v
	}

	for _, key := range addressKeys {
		v := out[key]
		if !strings.Contains(v, "/") {
			continue
		}
		owner, repo := SplitOwnerRepo(v)
		setOrDelete(out, ParamOwner, owner)
		setOrDelete(out, ParamRepo, repo)
		break
	}

	if out[ParamOwner] == "" || out[ParamRepo] == "" {
		if owner, repo, ok := FindOwnerRepo(text); ok {
			out[ParamOwner] = owner
			out[ParamRepo] = repo
		}
	}

	return out
}

// FindOwnerRepo returns the first owner/repo pair in text.
func FindOwnerRepo(text string) (owner, repo string, ok bool) {
	m := ownerRepoPattern.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// SplitOwnerRepo splits "owner/repo[/...]" into its first two segments.
func SplitOwnerRepo(v string) (owner, repo string) {
	parts := strings.SplitN(v, "/", 3)
	owner = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		repo = strings.TrimSpace(parts[1])
	}
	return owner, repo
}

func setOrDelete(m map[string]string, key, value string) {
	if value == "" {
		delete(m, key)
		return
	}
	m[key] = value
}
