package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github-agent/internal/agent"
	"github-agent/internal/intent"
)

// missingKeyError reports a required param that was never validated up front.
type missingKeyError struct {
	key string
}

func (e missingKeyError) Error() string {
	return fmt.Sprintf(MsgMissingKey, e.key)
}

// Dispatch runs in against remote. It performs at most one remote call and
// always returns a Result; a panic inside dispatch becomes an ExecutionError.
func (d *Dispatcher) Dispatch(ctx context.Context, remote agent.Remote, in intent.Intent) (res agent.Result) {
	defer func() {
		if r := recover(); r != nil {
			d.l.Errorf(ctx, "%s: recovered panic for %s: %v", LogPrefixDispatch, in.Action, r)
			res = executionFailure(r)
		}
	}()

	owner, repo := Resolve(in.Params)
	d.l.Debugf(ctx, "%s: action=%s owner=%q repo=%q", LogPrefixDispatch, in.Action, owner, repo)

	switch in.Action {
	case intent.ActionListRepos:
		return remote.ListRepos(ctx, in.Param(intent.ParamUsername), in.Param(intent.ParamOrg))

	case intent.ActionGetUser:
		return remote.GetUser(ctx, in.Param(intent.ParamUsername))

	case intent.ActionSearchRepos:
		query := strings.TrimSpace(in.Param(intent.ParamQuery))
		if query == "" {
			return agent.Fail(agent.ErrorKindMissingParameter, MsgMissingQuery)
		}
		return remote.SearchRepos(ctx, query)

	case intent.ActionGetRepo:
		if owner == "" || repo == "" {
			return missingOwnerRepo(in.Action)
		}
		return remote.GetRepo(ctx, owner, repo)

	case intent.ActionListIssues:
		if owner == "" || repo == "" {
			return missingOwnerRepo(in.Action)
		}
		return remote.ListIssues(ctx, owner, repo, stateOf(in))

	case intent.ActionCreateIssue:
		if owner == "" || repo == "" {
			return missingOwnerRepo(in.Action)
		}
		title, err := lookup(in.Params, intent.ParamTitle)
		if err != nil {
			return executionFailure(err)
		}
		return remote.CreateIssue(ctx, owner, repo, title, in.Param(intent.ParamBody))

	case intent.ActionListPRs:
		if owner == "" || repo == "" {
			return missingOwnerRepo(in.Action)
		}
		return remote.ListPullRequests(ctx, owner, repo, stateOf(in))

	case intent.ActionListBranches:
		if owner == "" || repo == "" {
			return missingOwnerRepo(in.Action)
		}
		return remote.ListBranches(ctx, owner, repo)

	case intent.ActionListCommits:
		if owner == "" || repo == "" {
			return missingOwnerRepo(in.Action)
		}
		return remote.ListCommits(ctx, owner, repo)

	default:
		return agent.Fail(agent.ErrorKindUnknownAction, fmt.Sprintf(MsgUnknownAction, in.Action))
	}
}

// Resolve finds owner and repo in params. The first of owner, repo,
// repository or full_name holding a "/" wins with its first two segments;
// otherwise the trimmed owner and repo values are used.
func Resolve(params map[string]string) (owner, repo string) {
	for _, key := range resolveKeys {
		if v := params[key]; strings.Contains(v, "/") {
			return intent.SplitOwnerRepo(v)
		}
	}
	return strings.TrimSpace(params[intent.ParamOwner]), strings.TrimSpace(params[intent.ParamRepo])
}

func lookup(params map[string]string, key string) (string, error) {
	v := strings.TrimSpace(params[key])
	if v == "" {
		return "", missingKeyError{key: key}
	}
	return v, nil
}

func stateOf(in intent.Intent) string {
	if s := strings.TrimSpace(in.Param(intent.ParamState)); s != "" {
		return s
	}
	return defaultState
}

func missingOwnerRepo(action intent.Action) agent.Result {
	return agent.Fail(agent.ErrorKindMissingParameter, fmt.Sprintf(MsgMissingOwnerRepo, purposes[string(action)]))
}

func executionFailure(cause any) agent.Result {
	if e, ok := cause.(missingKeyError); ok {
		return agent.Fail(agent.ErrorKindExecution, e.Error())
	}
	return agent.Fail(agent.ErrorKindExecution, fmt.Sprintf(MsgExecutionFailed, cause))
}
