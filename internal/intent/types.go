package intent

// Action is a GitHub operation the agent can perform.
type Action string

const (
	ActionListRepos    Action = "list_repos"
	ActionGetRepo      Action = "get_repo"
	ActionListIssues   Action = "list_issues"
	ActionCreateIssue  Action = "create_issue"
	ActionListPRs      Action = "list_prs"
	ActionListBranches Action = "list_branches"
	ActionListCommits  Action = "list_commits"
	ActionGetUser      Action = "get_user"
	ActionSearchRepos  Action = "search_repos"
	ActionUnknown      Action = "unknown"
)

// Valid reports whether a is one of the known actions, unknown included.
func (a Action) Valid() bool {
	switch a {
	case ActionListRepos, ActionGetRepo, ActionListIssues, ActionCreateIssue, ActionListPRs,
		ActionListBranches, ActionListCommits, ActionGetUser, ActionSearchRepos, ActionUnknown:
		return true
	}
	return false
}

// Intent is the structured reading of one user request.
type Intent struct {
	Action     Action            `json:"action"`
	Params     map[string]string `json:"params"`
	Confidence float64           `json:"confidence"`
}

// Param returns params[key] or "".
func (i Intent) Param(key string) string {
	if i.Params == nil {
		return ""
	}
	return i.Params[key]
}

// Policy holds the fixed confidences the keyword classifier assigns.
type Policy struct {
	// HighConfidence applies when both owner and repo were found in the text.
	HighConfidence float64
	LowConfidence  float64
}

// DefaultPolicy returns the stock confidences.
func DefaultPolicy() Policy {
	return Policy{HighConfidence: DefaultHighConfidence, LowConfidence: DefaultLowConfidence}
}

// modelOutput is the JSON object the model is asked to produce.
type modelOutput struct {
	Action     string         `json:"action"`
	Params     map[string]any `json:"params"`
	Confidence any            `json:"confidence"`
}
