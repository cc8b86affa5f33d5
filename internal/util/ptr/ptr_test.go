package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonEmpty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NonEmpty(""))
	if p := NonEmpty("web"); assert.NotNil(t, p) {
		assert.Equal(t, "web", *p)
	}
}

func TestDeref(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Deref[string](nil))
	assert.Equal(t, "x", Deref(String("x")))
	assert.True(t, Deref(Bool(true)))
}
