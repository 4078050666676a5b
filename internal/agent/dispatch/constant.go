package dispatch

// Log prefixes
const (
	LogPrefixDispatch = "internal.agent.dispatch.Dispatch"
)

const defaultState = "open"

// User-facing messages
const (
	MsgMissingOwnerRepo = "Provide owner/repo %s. Example: microsoft/vscode"
	MsgMissingQuery     = "Provide a search term. Example: search repositories about python"
	MsgUnknownAction    = "Unrecognized action: %s"
	MsgMissingKey       = "Missing parameter: %s. Try to be more specific, e.g. 'create an issue in microsoft/vscode titled Crash on start'"
	MsgExecutionFailed  = "Execution failed: %v"
)

// purposes completes MsgMissingOwnerRepo per action.
var purposes = map[string]string{
	"get_repo":      "to show a repository",
	"list_issues":   "to list issues",
	"create_issue":  "to create an issue",
	"list_prs":      "to list pull requests",
	"list_branches": "to list branches",
	"list_commits":  "to list commits",
}

// resolveKeys are scanned in order for a combined owner/repo value.
var resolveKeys = []string{"owner", "repo", "repository", "full_name"}
