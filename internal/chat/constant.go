package chat

const (
	// RejectedReplyPrefix marks a reply produced by a rejected request.
	RejectedReplyPrefix = "❌ "
)

var quickActions = []QuickAction{
	{ID: "my_repos", Label: "📂 My repos", Prompt: "List my repositories"},
	{ID: "my_profile", Label: "👤 My profile", Prompt: "Show my GitHub profile"},
	{ID: "search", Label: "🔍 Search", Prompt: "Search repositories about ", NeedsInput: true},
	{ID: "issues", Label: "📋 Issues", Prompt: "Show issues of ", NeedsInput: true},
	{ID: "prs", Label: "🔀 PRs", Prompt: "List PRs of ", NeedsInput: true},
}

// DefaultQuickActions returns a copy of the built-in quick actions.
func DefaultQuickActions() []QuickAction {
	return append([]QuickAction(nil), quickActions...)
}
