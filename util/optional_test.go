package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	t.Run("some", func(t *testing.T) {
		opt := Some(7)

		item, exists := opt.Unpack()
		assert.True(t, exists)
		assert.Equal(t, 7, item)
		assert.True(t, opt.IsSome())
		assert.Equal(t, 7, opt.Or(1))
		assert.Equal(t, "Some(7)", opt.String())
	})

	t.Run("none", func(t *testing.T) {
		opt := None[string]()

		item, exists := opt.Unpack()
		assert.False(t, exists)
		assert.Equal(t, "", item)
		assert.False(t, opt.IsSome())
		assert.Equal(t, "fallback", opt.Or("fallback"))
		assert.Equal(t, "None", opt.String())
	})

	t.Run("zero value is none", func(t *testing.T) {
		var opt Optional[int]
		assert.Equal(t, None[int](), opt)
		assert.False(t, opt.IsSome())
	})
}
