package atomicfile

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/out/problems/0001.two-sum/README.md"

	changed, err := Write(fs, path, []byte("first"), 0644)
	require.NoError(t, err)
	assert.True(t, changed)

	contents, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(contents))

	changed, err = Write(fs, path, []byte("first"), 0644)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = Write(fs, path, []byte("second"), 0644)
	require.NoError(t, err)
	assert.True(t, changed)

	contents, err = afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(contents))

	// No temp files are left behind.
	entries, err := afero.ReadDir(fs, "/out/problems/0001.two-sum")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	_, err := Write(fs, "/out/file", []byte("data"), 0644)
	assert.Error(t, err)
}
