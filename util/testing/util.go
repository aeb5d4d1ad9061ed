package testing_util

import (
	"testing"

	"github.com/kaleidawave/inclusive-or/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RequireSome fails the test immediately unless opt holds an item, and returns it.
func RequireSome[T any](t *testing.T, opt util.Optional[T]) T {
	t.Helper()

	item, exists := opt.Unpack()
	require.True(t, exists, "expected Some, got %s", opt)
	return item
}

func AssertNone[T any](t *testing.T, opt util.Optional[T]) bool {
	t.Helper()

	return assert.False(t, opt.IsSome(), "expected None, got %s", opt)
}
