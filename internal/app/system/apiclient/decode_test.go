package apiclient

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCollection(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"bare array", `[{"id":1},{"id":2}]`, []string{`{"id":1}`, `{"id":2}`}},
		{"results envelope", `{"count":2,"next":null,"results":[{"id":1},{"id":2}]}`, []string{`{"id":1}`, `{"id":2}`}},
		{"empty bare array", `[]`, []string{}},
		{"empty envelope", `{"results":[]}`, []string{}},
		{"envelope without results", `{"detail":"ok"}`, []string{}},
		{"results not an array", `{"results":"nope"}`, []string{}},
		{"results null", `{"results":null}`, []string{}},
		{"scalar payload", `42`, []string{}},
		{"string payload", `"hello"`, []string{}},
		{"null payload", `null`, []string{}},
		{"whitespace around array", "  \n[{\"id\":9}]\n", []string{`{"id":9}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCollection([]byte(tt.body))
			require.NoError(t, err)
			require.NotNil(t, got, "result must never be nil")
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.JSONEq(t, tt.want[i], string(got[i]))
			}
		})
	}
}

func TestDecodeCollection_EnvelopeMatchesBareArray(t *testing.T) {
	bare, err := DecodeCollection([]byte(`[{"username":"a"},{"username":"b"}]`))
	require.NoError(t, err)
	wrapped, err := DecodeCollection([]byte(`{"results":[{"username":"a"},{"username":"b"}]}`))
	require.NoError(t, err)
	assert.Equal(t, bare, wrapped)
}

func TestDecodeCollection_InvalidJSON(t *testing.T) {
	for _, body := range []string{``, `{`, `<html>oops</html>`, `[1,2`} {
		_, err := DecodeCollection([]byte(body))
		require.Error(t, err, "body %q", body)

		var de *DecodeError
		assert.True(t, errors.As(err, &de), "want DecodeError for %q, got %T", body, err)
	}
}

func TestDecodeCollection_RecordsAreUntouched(t *testing.T) {
	got, err := DecodeCollection([]byte(`[{"id":"65f0","extra":{"nested":[1,2,3]}}]`))
	require.NoError(t, err)
	require.Len(t, got, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(got[0], &rec))
	assert.Equal(t, "65f0", rec["id"])
	assert.Contains(t, rec, "extra")
}
