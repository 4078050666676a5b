// Package agenttest provides an in-memory agent.Remote for tests.
package agenttest

import (
	"context"
	"strings"
	"sync"

	"github-agent/internal/agent"
)

// Call records one remote invocation.
type Call struct {
	Method string
	Args   []string
}

// Remote is a recording agent.Remote. Results maps a method name to the
// Result it returns; unmapped methods return an empty acknowledgement.
type Remote struct {
	mu      sync.Mutex
	Results map[string]agent.Result
	// PanicOn makes the named method panic.
	PanicOn string
	calls   []Call
}

var _ agent.Remote = (*Remote)(nil)

// NewRemote creates an empty recording remote.
func NewRemote() *Remote {
	return &Remote{Results: map[string]agent.Result{}}
}

// Calls returns a copy of the recorded calls.
func (r *Remote) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Factory returns a RemoteFactory that always hands out r.
func (r *Remote) Factory() agent.RemoteFactory {
	return func(agent.Credential) agent.Remote { return r }
}

func (r *Remote) record(method string, args ...string) agent.Result {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Method: method, Args: args})
	res, panicking := r.Results[method], r.PanicOn == method
	r.mu.Unlock()

	if panicking {
		panic("agenttest: " + method + "(" + strings.Join(args, ", ") + ")")
	}
	return res
}

func (r *Remote) GetUser(ctx context.Context, username string) agent.Result {
	return r.record("GetUser", username)
}

func (r *Remote) ListRepos(ctx context.Context, username, org string) agent.Result {
	return r.record("ListRepos", username, org)
}

func (r *Remote) GetRepo(ctx context.Context, owner, repo string) agent.Result {
	return r.record("GetRepo", owner, repo)
}

func (r *Remote) ListIssues(ctx context.Context, owner, repo, state string) agent.Result {
	return r.record("ListIssues", owner, repo, state)
}

func (r *Remote) CreateIssue(ctx context.Context, owner, repo, title, body string) agent.Result {
	return r.record("CreateIssue", owner, repo, title, body)
}

func (r *Remote) ListPullRequests(ctx context.Context, owner, repo, state string) agent.Result {
	return r.record("ListPullRequests", owner, repo, state)
}

func (r *Remote) ListBranches(ctx context.Context, owner, repo string) agent.Result {
	return r.record("ListBranches", owner, repo)
}

func (r *Remote) ListCommits(ctx context.Context, owner, repo string) agent.Result {
	return r.record("ListCommits", owner, repo)
}

func (r *Remote) SearchRepos(ctx context.Context, query string) agent.Result {
	return r.record("SearchRepos", query)
}
