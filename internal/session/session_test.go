package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AppendAndHistory(t *testing.T) {
	s := New(Config{})

	s.Append("a", Turn{Role: RoleUser, Content: "hi"}, Turn{Role: RoleAssistant, Content: "hello"})
	s.Append("b", Turn{Role: RoleUser, Content: "other"})

	h := s.History("a")
	require.Len(t, h, 2)
	assert.Equal(t, RoleUser, h[0].Role)
	assert.Equal(t, "hello", h[1].Content)
	assert.False(t, h[0].Timestamp.IsZero())

	assert.Len(t, s.History("b"), 1)
	assert.Equal(t, 2, s.Len())
}

func TestStore_HistoryUnknownIsEmpty(t *testing.T) {
	s := New(Config{})

	h := s.History("missing")
	assert.NotNil(t, h)
	assert.Empty(t, h)
}

func TestStore_IgnoresEmptyID(t *testing.T) {
	s := New(Config{})
	s.Append("", Turn{Role: RoleUser, Content: "x"})
	assert.Equal(t, 0, s.Len())
}

func TestStore_TrimsToMaxHistory(t *testing.T) {
	s := New(Config{MaxHistory: 3})

	for i := 0; i < 5; i++ {
		s.Append("a", Turn{Role: RoleUser, Content: fmt.Sprint(i)})
	}

	h := s.History("a")
	require.Len(t, h, 3)
	assert.Equal(t, "2", h[0].Content)
	assert.Equal(t, "4", h[2].Content)
}

func TestStore_HistoryIsCopy(t *testing.T) {
	s := New(Config{})
	s.Append("a", Turn{Role: RoleUser, Content: "x"})

	h := s.History("a")
	h[0].Content = "mutated"

	assert.Equal(t, "x", s.History("a")[0].Content)
}

func TestStore_Clear(t *testing.T) {
	s := New(Config{})
	s.Append("a", Turn{Role: RoleUser, Content: "x"})

	s.Clear("a")

	assert.Empty(t, s.History("a"))
	assert.Equal(t, 0, s.Len())
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	s := New(Config{MaxSessions: 2})

	s.Append("a", Turn{Role: RoleUser, Content: "1"})
	s.Append("b", Turn{Role: RoleUser, Content: "2"})
	s.Append("c", Turn{Role: RoleUser, Content: "3"})

	assert.Empty(t, s.History("a"))
	assert.Len(t, s.History("c"), 1)
}

func TestStore_Expires(t *testing.T) {
	s := New(Config{TTL: 20 * time.Millisecond})
	s.Append("a", Turn{Role: RoleUser, Content: "x"})

	assert.Eventually(t, func() bool {
		return len(s.History("a")) == 0
	}, time.Second, 10*time.Millisecond)
}
