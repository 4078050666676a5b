package remote

import (
	"context"
	"time"

	"github-agent/internal/agent"
	"github-agent/pkg/github"
)

// maxFailureText caps the error text handed to the user.
const maxFailureText = 200

// Config configures GitHub clients built by the factory.
type Config struct {
	BaseURL string
	Timeout time.Duration
	PerPage int
}

// Client adapts pkg/github to agent.Remote.
type Client struct {
	gh *github.Client
}

var _ agent.Remote = (*Client)(nil)

// New wraps an existing GitHub client.
func New(gh *github.Client) *Client {
	return &Client{gh: gh}
}

// NewFactory returns a RemoteFactory building one client per credential.
func NewFactory(cfg Config) agent.RemoteFactory {
	return func(cred agent.Credential) agent.Remote {
		return New(github.New(cred.Token, cfg.Timeout,
			github.WithBaseURL(cfg.BaseURL),
			github.WithPerPage(cfg.PerPage),
		))
	}
}

func (c *Client) GetUser(ctx context.Context, username string) agent.Result {
	return wrap(c.gh.GetUser(ctx, username))
}

func (c *Client) ListRepos(ctx context.Context, username, org string) agent.Result {
	return wrap(c.gh.ListRepos(ctx, username, org))
}

func (c *Client) GetRepo(ctx context.Context, owner, repo string) agent.Result {
	return wrap(c.gh.GetRepo(ctx, owner, repo))
}

func (c *Client) ListIssues(ctx context.Context, owner, repo, state string) agent.Result {
	return wrap(c.gh.ListIssues(ctx, owner, repo, state))
}

func (c *Client) CreateIssue(ctx context.Context, owner, repo, title, body string) agent.Result {
	return wrap(c.gh.CreateIssue(ctx, owner, repo, title, body))
}

func (c *Client) ListPullRequests(ctx context.Context, owner, repo, state string) agent.Result {
	return wrap(c.gh.ListPullRequests(ctx, owner, repo, state))
}

func (c *Client) ListBranches(ctx context.Context, owner, repo string) agent.Result {
	return wrap(c.gh.ListBranches(ctx, owner, repo))
}

func (c *Client) ListCommits(ctx context.Context, owner, repo string) agent.Result {
	return wrap(c.gh.ListCommits(ctx, owner, repo))
}

func (c *Client) SearchRepos(ctx context.Context, query string) agent.Result {
	return wrap(c.gh.SearchRepos(ctx, query))
}

func wrap[T any](v T, err error) agent.Result {
	if err != nil {
		return agent.Fail(agent.ErrorKindRemoteFailure, truncate(err.Error()))
	}
	return agent.OK(v)
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxFailureText {
		return s
	}
	return string(r[:maxFailureText])
}
