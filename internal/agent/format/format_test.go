package format

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-agent/internal/agent"
	"github-agent/internal/intent"
	"github-agent/pkg/llmprovider"
	"github-agent/pkg/log"
)

type mockModel struct {
	content string
	err     error
	calls   int
	lastReq *llmprovider.CompletionRequest
}

func (m *mockModel) Complete(ctx context.Context, req *llmprovider.CompletionRequest) (*llmprovider.Response, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Content: m.content}, nil
}

func TestFormat_ErrorBypassesModel(t *testing.T) {
	model := &mockModel{content: "should not be used"}
	f := New(model, Config{}, log.NewNop())

	got := f.Format(context.Background(), intent.ActionGetRepo, agent.Fail(agent.ErrorKindRemoteFailure, "HTTP 404: Not Found"))

	assert.Equal(t, "❌ **Error:** HTTP 404: Not Found", got)
	assert.Zero(t, model.calls)
}

func TestFormat_DataGoesThroughModel(t *testing.T) {
	model := &mockModel{content: "  📂 **hello** (3 ⭐)\n"}
	f := New(model, Config{Language: "Portuguese"}, log.NewNop())

	got := f.Format(context.Background(), intent.ActionListRepos, agent.OK([]map[string]any{{"name": "hello", "html_url": "https://x/<y>"}}))

	assert.Equal(t, "📂 **hello** (3 ⭐)", got)
	require.Equal(t, 1, model.calls)
	assert.Contains(t, model.lastReq.Prompt, "Action: list_repos")
	assert.Contains(t, model.lastReq.Prompt, "Portuguese")
	assert.Contains(t, model.lastReq.Prompt, `"https://x/<y>"`)
	assert.Equal(t, PromptSystem, model.lastReq.System)
}

func TestFormat_ModelFailureIsReturnedAsText(t *testing.T) {
	model := &mockModel{err: errors.New("request timed out")}
	f := New(model, Config{}, log.NewNop())

	got := f.Format(context.Background(), intent.ActionGetUser, agent.OK(map[string]string{"login": "octocat"}))

	assert.Equal(t, "Error: request timed out", got)
	assert.Equal(t, 1, model.calls)
}

func TestSerialize_CapsLength(t *testing.T) {
	f := New(nil, Config{MaxChars: 50}, log.NewNop())

	got := f.Serialize(map[string]string{"text": strings.Repeat("ã", 200)})
	assert.Len(t, []rune(got), 50)

	small := f.Serialize([]int{1, 2})
	assert.Equal(t, "[1,2]", small)
}

func TestSerialize_DefaultCap(t *testing.T) {
	for _, cfg := range []Config{{}, {MaxChars: -1}} {
		f := New(nil, cfg, log.NewNop())
		got := f.Serialize(strings.Repeat("x", 5000))
		assert.Len(t, []rune(got), DefaultMaxChars)
	}
}

func TestFormat_NilModelReturnsJSON(t *testing.T) {
	f := New(nil, Config{}, log.NewNop())
	got := f.Format(context.Background(), intent.ActionGetUser, agent.OK(map[string]string{"login": "octocat"}))
	assert.Equal(t, "```json\n{\"login\":\"octocat\"}\n```", got)
}
