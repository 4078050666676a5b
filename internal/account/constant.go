package account

// TokenURL opens the personal access token page with the scopes the agent needs.
const TokenURL = "https://github.com/settings/tokens/new?scopes=repo,read:user,read:org&description=GitHub%20Agent"
