package format

// Log prefixes
const (
	LogPrefixFormat = "internal.agent.format.Format"
)

const (
	DefaultMaxChars = 3000
	DefaultLanguage = "English"

	ErrorTemplate     = "❌ **Error:** %s"
	DegradedTemplate  = "Error: %v"
	PromptSystem      = "You format GitHub API data for a chat user. Answer only with the formatted text."
	PromptFormatData  = "Format this GitHub data clearly in %s, using markdown with emojis:\n\nAction: %s\nData: %s"
	OfflineDataFormat = "```json\n%s\n```"
)
