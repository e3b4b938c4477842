package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText_TrimsContentAndBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "startup_time.txt")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBF 12.5\n"), 0o644))

	got, err := ReadText(path)

	require.NoError(t, err)
	assert.Equal(t, "12.5", got)
}

func TestReadText_MissingFile(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadRecords_AllowsRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stress.csv")
	content := "\xEF\xBB\xBFmetric,value\nQPS,1200\nnote\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := ReadRecords(path)

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"metric", "value"}, records[0])
	assert.Equal(t, []string{"note"}, records[2])
}

func TestValidateDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.NoError(t, ValidateDir(dir))
	assert.ErrorIs(t, ValidateDir(filepath.Join(dir, "missing")), ErrNotExist)
	assert.ErrorIs(t, ValidateDir(file), ErrNotDirectory)
}

func TestWriteFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "nested", "report.md")

	require.NoError(t, WriteFile(path, []byte("# report\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# report\n", string(data))
}
