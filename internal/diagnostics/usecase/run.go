package usecase

import (
	"context"
	"fmt"
	"strings"

	"github-agent/internal/agent"
	"github-agent/internal/diagnostics"
	"github-agent/pkg/llmprovider"
)

// Run executes the self-tests. Later checks are skipped or omitted when
// their prerequisite (a reachable model, a stored token) is missing.
func (uc *implUseCase) Run(ctx context.Context) diagnostics.Report {
	var results []diagnostics.CheckResult
	add := func(name string, status diagnostics.CheckStatus, details string) {
		results = append(results, diagnostics.CheckResult{Name: name, Status: status, Details: details})
	}

	provider, modelErr := uc.models.Available(ctx)
	modelOK := modelErr == nil
	if modelOK {
		add(diagnostics.CheckModelConnection, diagnostics.StatusPassed,
			fmt.Sprintf("%s at %s", provider.Name(), provider.Endpoint()))
		uc.checkModels(ctx, provider, add)
		uc.checkGeneration(ctx, provider, add)
	} else {
		add(diagnostics.CheckModelConnection, diagnostics.StatusFailed, modelErr.Error())
	}

	token, tokenErr := uc.tokens.Token()
	loggedIn := tokenErr == nil
	if loggedIn {
		uc.checkGitHub(ctx, token, add)
	} else {
		add(diagnostics.CheckGitHubAuth, diagnostics.StatusSkipped, "token not configured")
	}

	if modelOK && loggedIn {
		uc.checkIntents(ctx, add)
		uc.checkFullRun(ctx, token, add)
	}

	report := summarize(results)
	uc.l.Infof(ctx, "internal.diagnostics.usecase.Run: %d/%d passed", report.Passed, report.Total)
	return report
}

type addFunc func(name string, status diagnostics.CheckStatus, details string)

func (uc *implUseCase) checkModels(ctx context.Context, p llmprovider.Provider, add addFunc) {
	models, err := p.ListModels(ctx)
	switch {
	case err != nil:
		add(diagnostics.CheckModelList, diagnostics.StatusFailed, err.Error())
	case len(models) == 0:
		add(diagnostics.CheckModelList, diagnostics.StatusEmpty, "0 models")
	default:
		add(diagnostics.CheckModelList, diagnostics.StatusPassed,
			fmt.Sprintf("%d models: %s", len(models), strings.Join(head(models, 3), ", ")))
	}
}

func (uc *implUseCase) checkGeneration(ctx context.Context, p llmprovider.Provider, add addFunc) {
	resp, err := p.Complete(ctx, &llmprovider.CompletionRequest{Prompt: diagnostics.GenerationPrompt})
	if err != nil {
		add(diagnostics.CheckGeneration, diagnostics.StatusFailed, err.Error())
		return
	}
	if strings.TrimSpace(resp.Content) == "" {
		add(diagnostics.CheckGeneration, diagnostics.StatusFailed, "empty response")
		return
	}
	add(diagnostics.CheckGeneration, diagnostics.StatusPassed, "Response: "+preview(resp.Content))
}

func (uc *implUseCase) checkGitHub(ctx context.Context, token string, add addFunc) {
	gh := uc.github(token)

	u, err := gh.GetUser(ctx, "")
	if err != nil {
		add(diagnostics.CheckGitHubAuth, diagnostics.StatusFailed, err.Error())
		return
	}
	add(diagnostics.CheckGitHubAuth, diagnostics.StatusPassed, "User: "+u.Login)

	repos, err := gh.ListRepos(ctx, "", "")
	if err != nil {
		add(diagnostics.CheckListRepos, diagnostics.StatusFailed, err.Error())
		return
	}
	add(diagnostics.CheckListRepos, diagnostics.StatusPassed, fmt.Sprintf("%d repositories found", len(repos)))
}

func (uc *implUseCase) checkIntents(ctx context.Context, add addFunc) {
	for _, tc := range diagnostics.IntentCases {
		in := uc.classifier.Classify(ctx, tc.Text)
		status := diagnostics.StatusPassed
		if string(in.Action) != tc.Expected {
			status = diagnostics.StatusDifferent
		}
		add(fmt.Sprintf("Parse: %q", tc.Text), status,
			fmt.Sprintf("Action: %s (expected: %s)", in.Action, tc.Expected))
	}
}

func (uc *implUseCase) checkFullRun(ctx context.Context, token string, add addFunc) {
	env := uc.pipeline.Process(ctx, agent.Credential{Token: token}, diagnostics.FullRunPrompt)
	switch {
	case !env.Success:
		add(diagnostics.CheckFullRun, diagnostics.StatusFailed, env.Message)
	case env.Result != nil && env.Result.Failed():
		add(diagnostics.CheckFullRun, diagnostics.StatusFailed, env.Result.Error.Message)
	default:
		add(diagnostics.CheckFullRun, diagnostics.StatusPassed, "Agent processed the request")
	}
}

func summarize(results []diagnostics.CheckResult) diagnostics.Report {
	r := diagnostics.Report{Total: len(results), Results: results}
	for _, res := range results {
		if res.Status == diagnostics.StatusPassed {
			r.Passed++
		}
	}
	if r.Total > 0 {
		r.SuccessRate = float64(r.Passed) / float64(r.Total) * 100
	}
	return r
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func preview(s string) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) > diagnostics.DetailsPreview {
		return string(r[:diagnostics.DetailsPreview]) + "..."
	}
	return string(r)
}
