package intent

// Log prefixes
const (
	LogPrefixClassify = "internal.intent.Classify"
)

// Parameter keys
const (
	ParamOwner      = "owner"
	ParamRepo       = "repo"
	ParamRepository = "repository"
	ParamFullName   = "full_name"
	ParamQuery      = "query"
	ParamTitle      = "title"
	ParamBody       = "body"
	ParamState      = "state"
	ParamUsername   = "username"
	ParamOrg        = "org"
)

// Classifier prompt
const (
	PromptClassifierSystem = `You are a GitHub assistant. Convert the user's request into exactly one GitHub action.

Reply with ONLY a JSON object, no other text:
{"action": "<action>", "params": {...}, "confidence": <0.0-1.0>}

Available actions and params:
- list_repos: list repositories. params: username (optional), org (optional)
- get_repo: repository details. params: owner, repo
- list_issues: list issues. params: owner, repo, state (open|closed|all, optional)
- create_issue: open an issue. params: owner, repo, title, body (optional)
- list_prs: list pull requests. params: owner, repo, state (open|closed|all, optional)
- list_branches: list branches. params: owner, repo
- list_commits: list recent commits. params: owner, repo
- get_user: show a profile. params: username (optional, omit for the current user)
- search_repos: search repositories. params: query
- unknown: the request is not about GitHub

Always split "owner/repo" into separate params: "microsoft/vscode" means owner "microsoft" and repo "vscode".
The user may write in English or Portuguese.

Examples:
"List my repositories" -> {"action": "list_repos", "params": {}, "confidence": 0.95}
"issues do microsoft/vscode" -> {"action": "list_issues", "params": {"owner": "microsoft", "repo": "vscode"}, "confidence": 0.95}
"Show open PRs of facebook/react" -> {"action": "list_prs", "params": {"owner": "facebook", "repo": "react", "state": "open"}, "confidence": 0.9}
"Branches of golang/go" -> {"action": "list_branches", "params": {"owner": "golang", "repo": "go"}, "confidence": 0.9}
"Create an issue in octo/demo titled Crash on start" -> {"action": "create_issue", "params": {"owner": "octo", "repo": "demo", "title": "Crash on start"}, "confidence": 0.9}
"Search repositories about python" -> {"action": "search_repos", "params": {"query": "python"}, "confidence": 0.9}
"Show my GitHub profile" -> {"action": "get_user", "params": {}, "confidence": 0.95}`
)

// Classifier configuration
const (
	ClassifierTemperature = 0.1
	DefaultHighConfidence = 0.7
	DefaultLowConfidence  = 0.3
)

// Log messages
const (
	ErrMsgLLMCallFailed      = "LLM call failed, falling back to keyword classifier"
	ErrMsgJSONParseFailed    = "Failed to parse model output, falling back to keyword classifier"
	LogMsgUnrecognizedAction = "Model returned an unrecognized action"
)

// Keyword tables for the fallback classifier. Single words match whole
// tokens; phrases match as substrings of the lowercased text.
var (
	issueTokens   = []string{"issue", "issues", "problema", "problemas"}
	branchTokens  = []string{"branch", "branches", "ramo", "ramos"}
	commitTokens  = []string{"commit", "commits"}
	prTokens      = []string{"pr", "prs"}
	prPhrases     = []string{"pull request", "pull requests"}
	repoTokens    = []string{"repo", "repos", "repository", "repositories", "repositório", "repositórios", "repositorio", "repositorios"}
	searchTokens  = []string{"search", "find", "busca", "buscar", "busque", "pesquisa", "pesquisar", "procure"}
	listMyPhrases = []string{"meus repo", "meus reposit", "list repo", "my repo"}

	// searchFillers are dropped from the front of an extracted search query.
	searchFillers = []string{
		"for", "about", "on", "repo", "repos", "repository", "repositories",
		"sobre", "de", "do", "da", "por", "repositório", "repositórios", "repositorio", "repositorios",
	}
)
