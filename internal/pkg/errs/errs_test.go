//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"employee-discount/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("limit reached")

	t.Run("marked error matches sentinel and keeps message", func(t *testing.T) {
		base := errors.New("remaining is 0.00")
		marked := errs.Mark(base, sentinel)

		assert.True(t, errors.Is(marked, sentinel))
		assert.True(t, errs.Is(marked, sentinel))
		assert.Contains(t, marked.Error(), "remaining is 0.00")
	})

	t.Run("nil error returns the sentinel itself", func(t *testing.T) {
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})
}

func TestWrap(t *testing.T) {
	assert.Nil(t, errs.Wrap(nil, "ignored"))
	assert.Nil(t, errs.Wrapf(nil, "ignored %d", 1))

	base := errs.New("boom")
	wrapped := errs.Wrapf(base, "issue code for %s", "employee")
	require.Error(t, wrapped)
	assert.Equal(t, "issue code for employee: boom", wrapped.Error())
	assert.True(t, errors.Is(wrapped, base))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))

	lines := errs.ExtractStackLines(errs.New("with stack"), 2)
	assert.Len(t, lines, 2)
	assert.Equal(t, "with stack", lines[0])
}
