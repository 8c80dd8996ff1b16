package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/authfront/authfront/pkg/navigation"
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	rec := navigation.NewRecorder()

	kind, path := rec.Last()
	assert.Equal(t, navigation.KindNone, kind)
	assert.Empty(t, path)

	rec.Push("/dashboard")
	kind, path = rec.Last()
	assert.Equal(t, navigation.KindPush, kind)
	assert.Equal(t, "/dashboard", path)

	rec.Replace("/signin")
	kind, path = rec.Last()
	assert.Equal(t, navigation.KindReplace, kind)
	assert.Equal(t, "/signin", path)

	rec.Reset()
	kind, path = rec.Last()
	assert.Equal(t, navigation.KindNone, kind)
	assert.Empty(t, path)
}
