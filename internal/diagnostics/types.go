package diagnostics

// CheckStatus is the outcome of one self-test.
type CheckStatus string

const (
	StatusPassed CheckStatus = "passed"
	StatusFailed CheckStatus = "failed"
	// StatusSkipped marks a check whose prerequisite is missing.
	StatusSkipped CheckStatus = "skipped"
	// StatusEmpty marks a check that succeeded with nothing to show.
	StatusEmpty CheckStatus = "empty"
	// StatusDifferent marks an intent check that resolved to another action.
	StatusDifferent CheckStatus = "different"
)

// CheckResult is one self-test line.
type CheckResult struct {
	Name    string
	Status  CheckStatus
	Details string
}

// Report aggregates a diagnostics run. SuccessRate is a percentage.
type Report struct {
	Total       int
	Passed      int
	SuccessRate float64
	Results     []CheckResult
}

type ModelStatus struct {
	Online   bool
	Provider string
	Name     string
	Endpoint string
	Models   []string
	Error    string
}

type GitHubStatus struct {
	LoggedIn  bool
	Connected bool
	Login     string
	Error     string
}

type StatusOutput struct {
	Model  ModelStatus
	GitHub GitHubStatus
}
