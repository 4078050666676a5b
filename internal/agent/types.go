package agent

import "context"

// ErrorKind classifies a failed dispatch.
type ErrorKind string

const (
	ErrorKindMissingParameter ErrorKind = "MissingParameter"
	ErrorKindUnknownAction    ErrorKind = "UnknownAction"
	ErrorKindExecution        ErrorKind = "ExecutionError"
	ErrorKindRemoteFailure    ErrorKind = "RemoteOperationFailure"
)

// ErrorRecord is a failure carried as data instead of a Go error.
type ErrorRecord struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *ErrorRecord) Error() string {
	return e.Message
}

// Result is the outcome of one dispatch: a payload or an ErrorRecord, never both.
// A zero Result is an empty acknowledgement.
type Result struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorRecord `json:"error,omitempty"`
}

// Failed reports whether r carries an ErrorRecord.
func (r Result) Failed() bool {
	return r.Error != nil
}

// OK wraps a payload.
func OK(data any) Result {
	return Result{Data: data}
}

// Fail builds a failed Result.
func Fail(kind ErrorKind, message string) Result {
	return Result{Error: &ErrorRecord{Kind: kind, Message: message}}
}

// Credential is the caller's GitHub identity for one pipeline run.
type Credential struct {
	Token string
}

// Remote is the GitHub surface used by the dispatcher. Every method returns
// either a payload or a RemoteOperationFailure record; none panics or errors.
type Remote interface {
	GetUser(ctx context.Context, username string) Result
	ListRepos(ctx context.Context, username, org string) Result
	GetRepo(ctx context.Context, owner, repo string) Result
	ListIssues(ctx context.Context, owner, repo, state string) Result
	CreateIssue(ctx context.Context, owner, repo, title, body string) Result
	ListPullRequests(ctx context.Context, owner, repo, state string) Result
	ListBranches(ctx context.Context, owner, repo string) Result
	ListCommits(ctx context.Context, owner, repo string) Result
	SearchRepos(ctx context.Context, query string) Result
}

// RemoteFactory builds a Remote bound to a credential.
type RemoteFactory func(cred Credential) Remote
