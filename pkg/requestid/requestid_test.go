package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authfront/authfront/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	echo := func(captured *string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*captured = requestid.FromContext(r.Context())
		})
	}

	t.Run("generates id when absent", func(t *testing.T) {
		t.Parallel()

		var got string
		rec := httptest.NewRecorder()
		requestid.Middleware(echo(&got)).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		require.NotEmpty(t, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
		assert.Equal(t, got, rec.Header().Get(requestid.Header))
	})

	t.Run("honors valid incoming id", func(t *testing.T) {
		t.Parallel()

		var got string
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set(requestid.Header, "trace-abc_123")

		requestid.Middleware(echo(&got)).ServeHTTP(httptest.NewRecorder(), r)
		assert.Equal(t, "trace-abc_123", got)
	})

	t.Run("replaces malformed id", func(t *testing.T) {
		t.Parallel()

		tests := []string{"bad id", "bad;id", strings.Repeat("a", 200)}
		for _, bad := range tests {
			var got string
			r := httptest.NewRequest("GET", "/", nil)
			r.Header.Set(requestid.Header, bad)

			requestid.Middleware(echo(&got)).ServeHTTP(httptest.NewRecorder(), r)
			assert.NotEqual(t, bad, got)
		}
	})
}

func TestFromContext_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(t.Context()))
}
