package bank

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource_Fetch(t *testing.T) {
	rootDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(rootDir, "Admin Officer.json"), []byte(`[]`), 0o644))

	source := NewFileSource(rootDir)

	t.Run("reads the subject file", func(t *testing.T) {
		payload, err := source.Fetch(context.Background(), "Admin Officer")

		require.NoError(t, err)
		assert.Equal(t, `[]`, string(payload))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := source.Fetch(context.Background(), "Unknown Subject")

		assert.Error(t, err)
	})
}
