package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))
	writeFile(t, filepath.Join(dir, "Mono.OTF"))
	writeFile(t, filepath.Join(dir, "README.md"))

	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inter/Inter-Regular.ttf", "Mono.OTF"}, list)

	list, err = ScanDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFindInPrefersRegular(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	writeFile(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))
	writeFile(t, filepath.Join(dir, "Roboto_Mono", "RobotoMono.ttf"))

	got, err := FindIn([]string{dir}, "inter")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"), got)

	got, err = FindIn([]string{dir}, "Roboto Mono")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Roboto_Mono", "RobotoMono.ttf"), got)

	_, err = FindIn([]string{dir}, "Comic")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = FindIn([]string{dir}, " - ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveExistingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Custom.ttf")
	writeFile(t, path)

	got, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	_, err = Resolve("")
	assert.ErrorIs(t, err, ErrNotFound)
}
