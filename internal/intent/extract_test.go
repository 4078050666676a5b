package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"code fence", "```json\n{\"action\":\"get_user\"}\n```", `{"action":"get_user"}`},
		{"commentary around", `Sure! Here you go: {"a":{"b":2}} hope it helps {"c":3}`, `{"a":{"b":2}}`},
		{"brace in string", `{"title":"fix } and {","x":1}`, `{"title":"fix } and {","x":1}`},
		{"escaped quote in string", `{"title":"say \"}\" loudly"}`, `{"title":"say \"}\" loudly"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSONObject_NoSpan(t *testing.T) {
	for _, in := range []string{"", "no json here", `{"unterminated": 1`, "} {"} {
		_, err := ExtractJSONObject(in)
		assert.ErrorIs(t, err, ErrNoJSONObject, "input %q", in)
	}
}
