package github

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"
)

const (
	DefaultPerPage    = 30
	DefaultTimeout    = 30 * time.Second
	commitsPerPage    = 20
	searchPerPage     = 10
	sortUpdated       = "updated"
	defaultIssueState = "open"
)

// Client wraps go-github with the handful of read/write calls the agent needs.
type Client struct {
	client  *github.Client
	perPage int
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL (GitHub Enterprise, tests).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url == "" {
			return
		}
		c.client.BaseURL, _ = c.client.BaseURL.Parse(strings.TrimRight(url, "/") + "/")
	}
}

// WithPerPage overrides the page size used for repository, issue, PR and branch listings.
func WithPerPage(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.perPage = n
		}
	}
}

// New creates a client authenticated with a personal access token.
func New(token string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var httpClient *http.Client
	if token != "" {
		httpClient = oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = timeout

	c := &Client{
		client:  github.NewClient(httpClient),
		perPage: DefaultPerPage,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetUser fetches a profile. An empty username means the authenticated user.
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	u, _, err := c.client.Users.Get(ctx, username)
	if err != nil {
		return nil, wrapError(err)
	}
	return toUser(u), nil
}

// ListRepos lists an organization's repositories when org is set, else a
// user's, else the authenticated user's. Most recently updated first.
func (c *Client) ListRepos(ctx context.Context, username, org string) ([]Repository, error) {
	list := github.ListOptions{PerPage: c.perPage}

	var (
		repos []*github.Repository
		err   error
	)
	switch {
	case org != "":
		repos, _, err = c.client.Repositories.ListByOrg(ctx, org, &github.RepositoryListByOrgOptions{
			Sort:        sortUpdated,
			ListOptions: list,
		})
	case username != "":
		repos, _, err = c.client.Repositories.ListByUser(ctx, username, &github.RepositoryListByUserOptions{
			Sort:        sortUpdated,
			ListOptions: list,
		})
	default:
		repos, _, err = c.client.Repositories.ListByAuthenticatedUser(ctx, &github.RepositoryListByAuthenticatedUserOptions{
			Sort:        sortUpdated,
			ListOptions: list,
		})
	}
	if err != nil {
		return nil, wrapError(err)
	}

	out := make([]Repository, 0, len(repos))
	for _, r := range repos {
		out = append(out, *toRepository(r))
	}
	return out, nil
}

func (c *Client) GetRepo(ctx context.Context, owner, repo string) (*Repository, error) {
	r, _, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, wrapError(err)
	}
	return toRepository(r), nil
}

// ListIssues lists issues in the given state ("open" when empty).
func (c *Client) ListIssues(ctx context.Context, owner, repo, state string) ([]Issue, error) {
	if state == "" {
		state = defaultIssueState
	}
	issues, _, err := c.client.Issues.ListByRepo(ctx, owner, repo, &github.IssueListByRepoOptions{
		State:       state,
		ListOptions: github.ListOptions{PerPage: c.perPage},
	})
	if err != nil {
		return nil, wrapError(err)
	}

	out := make([]Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, *toIssue(i))
	}
	return out, nil
}

func (c *Client) CreateIssue(ctx context.Context, owner, repo, title, body string) (*Issue, error) {
	req := &github.IssueRequest{Title: github.String(title)}
	if body != "" {
		req.Body = github.String(body)
	}

	i, _, err := c.client.Issues.Create(ctx, owner, repo, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return toIssue(i), nil
}

// ListPullRequests lists pull requests in the given state ("open" when empty).
func (c *Client) ListPullRequests(ctx context.Context, owner, repo, state string) ([]PullRequest, error) {
	if state == "" {
		state = defaultIssueState
	}
	prs, _, err := c.client.PullRequests.List(ctx, owner, repo, &github.PullRequestListOptions{
		State:       state,
		ListOptions: github.ListOptions{PerPage: c.perPage},
	})
	if err != nil {
		return nil, wrapError(err)
	}

	out := make([]PullRequest, 0, len(prs))
	for _, pr := range prs {
		out = append(out, PullRequest{
			Number:    pr.GetNumber(),
			Title:     pr.GetTitle(),
			State:     pr.GetState(),
			Author:    pr.GetUser().GetLogin(),
			Head:      pr.GetHead().GetRef(),
			Base:      pr.GetBase().GetRef(),
			Draft:     pr.GetDraft(),
			HTMLURL:   pr.GetHTMLURL(),
			CreatedAt: pr.GetCreatedAt().Time,
		})
	}
	return out, nil
}

func (c *Client) ListBranches(ctx context.Context, owner, repo string) ([]Branch, error) {
	branches, _, err := c.client.Repositories.ListBranches(ctx, owner, repo, &github.BranchListOptions{
		ListOptions: github.ListOptions{PerPage: c.perPage},
	})
	if err != nil {
		return nil, wrapError(err)
	}

	out := make([]Branch, 0, len(branches))
	for _, b := range branches {
		out = append(out, Branch{
			Name:      b.GetName(),
			Protected: b.GetProtected(),
			SHA:       b.GetCommit().GetSHA(),
		})
	}
	return out, nil
}

// ListCommits lists the most recent commits on the default branch.
func (c *Client) ListCommits(ctx context.Context, owner, repo string) ([]Commit, error) {
	commits, _, err := c.client.Repositories.ListCommits(ctx, owner, repo, &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: commitsPerPage},
	})
	if err != nil {
		return nil, wrapError(err)
	}

	out := make([]Commit, 0, len(commits))
	for _, rc := range commits {
		author := rc.GetCommit().GetAuthor()
		out = append(out, Commit{
			SHA:     rc.GetSHA(),
			Message: rc.GetCommit().GetMessage(),
			Author:  author.GetName(),
			Date:    author.GetDate().Time,
			HTMLURL: rc.GetHTMLURL(),
		})
	}
	return out, nil
}

// SearchRepos runs a repository search and returns the first page.
func (c *Client) SearchRepos(ctx context.Context, query string) (*SearchResult, error) {
	res, _, err := c.client.Search.Repositories(ctx, query, &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: searchPerPage},
	})
	if err != nil {
		return nil, wrapError(err)
	}

	out := &SearchResult{
		TotalCount:        res.GetTotal(),
		IncompleteResults: res.GetIncompleteResults(),
		Items:             make([]Repository, 0, len(res.Repositories)),
	}
	for _, r := range res.Repositories {
		out.Items = append(out.Items, *toRepository(r))
	}
	return out, nil
}

func toUser(u *github.User) *User {
	return &User{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		Bio:         u.GetBio(),
		Company:     u.GetCompany(),
		Location:    u.GetLocation(),
		Email:       u.GetEmail(),
		Blog:        u.GetBlog(),
		PublicRepos: u.GetPublicRepos(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		HTMLURL:     u.GetHTMLURL(),
		AvatarURL:   u.GetAvatarURL(),
		CreatedAt:   u.GetCreatedAt().Time,
	}
}

func toRepository(r *github.Repository) *Repository {
	return &Repository{
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		Owner:         r.GetOwner().GetLogin(),
		Description:   r.GetDescription(),
		Private:       r.GetPrivate(),
		Fork:          r.GetFork(),
		Language:      r.GetLanguage(),
		Stars:         r.GetStargazersCount(),
		Forks:         r.GetForksCount(),
		OpenIssues:    r.GetOpenIssuesCount(),
		DefaultBranch: r.GetDefaultBranch(),
		HTMLURL:       r.GetHTMLURL(),
		CreatedAt:     r.GetCreatedAt().Time,
		UpdatedAt:     r.GetUpdatedAt().Time,
	}
}

func toIssue(i *github.Issue) *Issue {
	labels := make([]string, 0, len(i.Labels))
	for _, l := range i.Labels {
		labels = append(labels, l.GetName())
	}
	return &Issue{
		Number:        i.GetNumber(),
		Title:         i.GetTitle(),
		State:         i.GetState(),
		Author:        i.GetUser().GetLogin(),
		Labels:        labels,
		Comments:      i.GetComments(),
		IsPullRequest: i.IsPullRequest(),
		HTMLURL:       i.GetHTMLURL(),
		CreatedAt:     i.GetCreatedAt().Time,
	}
}
