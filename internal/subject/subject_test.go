package subject

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	require.Len(t, catalog, 4)
	for _, sub := range catalog {
		assert.NotEmpty(t, sub.Name)
		assert.NotEmpty(t, sub.Prefix)
		assert.NotEmpty(t, sub.Topics)
		assert.True(t, sub.HasMode(ModePractice))
		assert.True(t, sub.HasMode(ModeReinforcement))
	}
}

func TestSubject_HasMode(t *testing.T) {
	sub := Subject{Modes: []StudyMode{ModePractice, ModeTimed}}

	assert.True(t, sub.HasMode(ModeTimed))
	assert.False(t, sub.HasMode(ModeMixed))
}

func TestLoadCatalog(t *testing.T) {
	t.Run("appends and replaces", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "subjects.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
- name: Staff Nurse
  prefix: sn
  topics: [Anatomy, Pharmacology]
  modes: [practice]
- name: Admin Officer
  prefix: ao2
  topics: [Management]
  modes: [practice, topic]
`), 0o644))

		catalog, err := LoadCatalog(path)

		require.NoError(t, err)
		assert.Len(t, catalog, 5)

		nurse, err := Find(catalog, "Staff Nurse")
		require.NoError(t, err)
		assert.Equal(t, "sn", nurse.Prefix)

		// The built-in entry with the same name is replaced.
		admin, err := Find(catalog, "Admin Officer")
		require.NoError(t, err)
		assert.Equal(t, "ao2", admin.Prefix)
		assert.Equal(t, []string{"Management"}, admin.Topics)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))

		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "subjects.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`{not yaml`), 0o644))

		_, err := LoadCatalog(path)

		assert.Error(t, err)
	})
}

func TestFind(t *testing.T) {
	catalog := DefaultCatalog()

	sub, err := Find(catalog, "Quantitative Aptitudes and Reasoning")
	require.NoError(t, err)
	assert.Equal(t, "qa", sub.Prefix)

	_, err = Find(catalog, "Astrology")
	assert.ErrorIs(t, err, ErrUnknownSubject)
}
