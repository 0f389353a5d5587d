package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeypair_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "id.json")
	kp, err := GenerateKeypair()
	require.NoError(t, err)

	require.NoError(t, kp.Save(path, false))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadKeypair(path)
	require.NoError(t, err)
	assert.Equal(t, kp.Public, loaded.Public)
	assert.True(t, kp.Private.Equal(loaded.Private))
}

func TestKeypair_SaveRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id.json")
	kp, err := GenerateKeypair()
	require.NoError(t, err)
	require.NoError(t, kp.Save(path, false))

	assert.Error(t, kp.Save(path, false))
	assert.NoError(t, kp.Save(path, true))
}

func TestLoadKeypair_Invalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"not json":     "hello",
		"short":        "[1,2,3]",
		"out of range": "[" + repeatInts("300", 64) + "]",
		"bad pub half": "[" + repeatInts("1", 64) + "]",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
			_, err := LoadKeypair(path)
			assert.Error(t, err)
		})
	}
}

func repeatInts(v string, n int) string {
	s := v
	for i := 1; i < n; i++ {
		s += "," + v
	}
	return s
}
