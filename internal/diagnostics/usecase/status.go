package usecase

import (
	"context"

	"github-agent/internal/diagnostics"
)

// Status probes the model providers and, when logged in, GitHub.
func (uc *implUseCase) Status(ctx context.Context) diagnostics.StatusOutput {
	var out diagnostics.StatusOutput

	if p := uc.models.Primary(); p != nil {
		out.Model.Provider = p.Name()
		out.Model.Name = p.Model()
		out.Model.Endpoint = p.Endpoint()
	}

	p, err := uc.models.Available(ctx)
	if err != nil {
		out.Model.Error = err.Error()
	} else {
		out.Model.Online = true
		out.Model.Provider = p.Name()
		out.Model.Name = p.Model()
		out.Model.Endpoint = p.Endpoint()
		if models, mErr := p.ListModels(ctx); mErr == nil {
			out.Model.Models = models
		}
	}

	token, err := uc.tokens.Token()
	if err != nil {
		return out
	}
	out.GitHub.LoggedIn = true

	u, err := uc.github(token).GetUser(ctx, "")
	if err != nil {
		out.GitHub.Error = err.Error()
		return out
	}
	out.GitHub.Connected = true
	out.GitHub.Login = u.Login
	return out
}
