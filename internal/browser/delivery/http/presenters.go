package http

import (
	"strings"

	"github-agent/internal/browser"
	"github-agent/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Filter string `form:"filter"`
	Sort   string `form:"sort"`
}

func (r listReq) validate() error {
	if !browser.SortOrder(strings.ToLower(r.Sort)).Valid() {
		return browser.ErrInvalidSort
	}
	return nil
}

func (r listReq) toInput() browser.ListReposInput {
	return browser.ListReposInput{
		Filter: r.Filter,
		Sort:   browser.SortOrder(strings.ToLower(r.Sort)),
	}
}

// --- Response DTOs ---

type repoResp struct {
	Name        string            `json:"name"`
	FullName    string            `json:"full_name"`
	Description string            `json:"description,omitempty"`
	Language    string            `json:"language,omitempty"`
	Private     bool              `json:"private"`
	Fork        bool              `json:"fork"`
	Stars       int               `json:"stargazers_count"`
	Forks       int               `json:"forks_count"`
	HTMLURL     string            `json:"html_url"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

type listResp struct {
	Repos []repoResp `json:"repos"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(o browser.ListReposOutput) listResp {
	repos := make([]repoResp, 0, len(o.Repos))
	for _, r := range o.Repos {
		repos = append(repos, repoResp{
			Name:        r.Name,
			FullName:    r.FullName,
			Description: r.Description,
			Language:    r.Language,
			Private:     r.Private,
			Fork:        r.Fork,
			Stars:       r.Stars,
			Forks:       r.Forks,
			HTMLURL:     r.HTMLURL,
			UpdatedAt:   response.DateTime(r.UpdatedAt),
		})
	}
	return listResp{Repos: repos, Total: o.Total}
}
