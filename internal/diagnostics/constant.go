package diagnostics

const (
	CheckModelConnection = "Model connection"
	CheckModelList       = "List models"
	CheckGeneration      = "Text generation"
	CheckGitHubAuth      = "GitHub authentication"
	CheckListRepos       = "List repositories"
	CheckFullRun         = "Full agent run"

	GenerationPrompt = "Reply with just 'OK': test"
	FullRunPrompt    = "Show my GitHub profile"

	// DetailsPreview caps free text copied into check details.
	DetailsPreview = 50
)

// IntentCase is a canned classification check.
type IntentCase struct {
	Text     string
	Expected string
}

// IntentCases are run when both the model and a GitHub login are available.
var IntentCases = []IntentCase{
	{Text: "List my repositories", Expected: "list_repos"},
	{Text: "Show the issues of microsoft/vscode", Expected: "list_issues"},
	{Text: "Search repositories about python", Expected: "search_repos"},
}
