package http

import (
	"github-agent/internal/diagnostics"
)

// --- Response DTOs ---

type checkResp struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Details string `json:"details"`
}

type reportResp struct {
	Total       int         `json:"total"`
	Passed      int         `json:"passed"`
	SuccessRate float64     `json:"success_rate"`
	Results     []checkResp `json:"results"`
}

func (h *handler) newReportResp(r diagnostics.Report) reportResp {
	results := make([]checkResp, 0, len(r.Results))
	for _, res := range r.Results {
		results = append(results, checkResp{
			Name:    res.Name,
			Status:  string(res.Status),
			Details: res.Details,
		})
	}
	return reportResp{
		Total:       r.Total,
		Passed:      r.Passed,
		SuccessRate: r.SuccessRate,
		Results:     results,
	}
}

type modelStatusResp struct {
	Online   bool     `json:"online"`
	Provider string   `json:"provider,omitempty"`
	Name     string   `json:"name,omitempty"`
	Endpoint string   `json:"endpoint,omitempty"`
	Models   []string `json:"models"`
	Error    string   `json:"error,omitempty"`
}

type githubStatusResp struct {
	LoggedIn  bool   `json:"logged_in"`
	Connected bool   `json:"connected"`
	Login     string `json:"login,omitempty"`
	Error     string `json:"error,omitempty"`
}

type statusResp struct {
	Model  modelStatusResp  `json:"model"`
	GitHub githubStatusResp `json:"github"`
}

func (h *handler) newStatusResp(o diagnostics.StatusOutput) statusResp {
	models := o.Model.Models
	if models == nil {
		models = []string{}
	}
	return statusResp{
		Model: modelStatusResp{
			Online:   o.Model.Online,
			Provider: o.Model.Provider,
			Name:     o.Model.Name,
			Endpoint: o.Model.Endpoint,
			Models:   models,
			Error:    o.Model.Error,
		},
		GitHub: githubStatusResp{
			LoggedIn:  o.GitHub.LoggedIn,
			Connected: o.GitHub.Connected,
			Login:     o.GitHub.Login,
			Error:     o.GitHub.Error,
		},
	}
}
