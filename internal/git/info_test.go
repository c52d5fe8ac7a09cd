package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeOutsideRepository(t *testing.T) {
	info, err := Describe(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestRevisionFormatting(t *testing.T) {
	info := &Info{
		CommitHash: "3f2a9c1d4b5e6f708192a3b4c5d6e7f809102132",
		Branch:     "main",
	}
	assert.Equal(t, "3f2a9c1d (main)", info.Revision())

	info.IsDirty = true
	assert.Equal(t, "3f2a9c1d (main, dirty)", info.Revision())
}
