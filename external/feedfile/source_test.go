package feedfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshot(t *testing.T, dir, name, status string) {
	t.Helper()
	body := `{"response":[{"fixture":{"id":1035048,"status":{"short":"` + status + `","elapsed":10}}}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestSource_ReplaysInLexicalOrderAndRepeatsLast(t *testing.T) {
	root := t.TempDir()
	fixtureDir := filepath.Join(root, "1035048")
	require.NoError(t, os.MkdirAll(fixtureDir, 0o755))
	writeSnapshot(t, fixtureDir, "002.json", "2H")
	writeSnapshot(t, fixtureDir, "001.json", "1H")
	writeSnapshot(t, fixtureDir, "003.json", "FT")
	require.NoError(t, os.WriteFile(filepath.Join(fixtureDir, "notes.txt"), []byte("ignored"), 0o644))

	source := NewSource(root, nil)
	ctx := context.Background()

	var statuses []string
	for i := 0; i < 5; i++ {
		snapshot, err := source.FetchSnapshot(ctx, 1035048)
		require.NoError(t, err)
		statuses = append(statuses, snapshot.Fixture.Status.Short)
	}
	assert.Equal(t, []string{"1H", "2H", "FT", "FT", "FT"}, statuses)

	source.Rewind(1035048)
	snapshot, err := source.FetchSnapshot(ctx, 1035048)
	require.NoError(t, err)
	assert.Equal(t, "1H", snapshot.Fixture.Status.Short)
}

func TestSource_MissingFixture(t *testing.T) {
	source := NewSource(t.TempDir(), nil)
	_, err := source.FetchSnapshot(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSnapshots))
}

func TestReadSnapshotFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fixture":`), 0o644))

	_, err := ReadSnapshotFile(path)
	require.Error(t, err)
}
