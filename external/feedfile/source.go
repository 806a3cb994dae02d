package feedfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/livematch/external/apifootball"
	"github.com/riskibarqy/livematch/internal/domain/livefeed"
	"github.com/riskibarqy/livematch/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
)

var ErrNoSnapshots = crerr.New("no recorded snapshots for fixture")

// Source replays recorded feed responses from <dir>/<fixture_id>/*.json.
// Each fetch advances to the next file in lexical order; once the last
// file is reached it is served on every further fetch.
type Source struct {
	dir    string
	logger *logging.Logger

	mu      sync.Mutex
	cursors map[int64]int
}

func NewSource(dir string, logger *logging.Logger) *Source {
	if logger == nil {
		logger = logging.Default()
	}
	return &Source{dir: dir, logger: logger, cursors: make(map[int64]int)}
}

func (s *Source) FetchSnapshot(ctx context.Context, fixtureID int64) (livefeed.Snapshot, error) {
	files, err := s.files(fixtureID)
	if err != nil {
		return livefeed.Snapshot{}, err
	}

	s.mu.Lock()
	idx := s.cursors[fixtureID]
	if idx >= len(files) {
		idx = len(files) - 1
	}
	s.cursors[fixtureID] = idx + 1
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "replaying recorded snapshot", "fixture_id", fixtureID, "file", filepath.Base(files[idx]), "position", idx)
	return ReadSnapshotFile(files[idx])
}

// Rewind restarts the replay of fixtureID from its first file.
func (s *Source) Rewind(fixtureID int64) {
	s.mu.Lock()
	delete(s.cursors, fixtureID)
	s.mu.Unlock()
}

func (s *Source) files(fixtureID int64) ([]string, error) {
	pattern := filepath.Join(s.dir, strconv.FormatInt(fixtureID, 10), "*.json")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("list snapshots %s: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, crerr.Wrapf(ErrNoSnapshots, "fixture_id=%d dir=%s", fixtureID, s.dir)
	}
	sort.Strings(files)
	return files, nil
}

// ReadSnapshotFile decodes one recorded response or bare snapshot document.
func ReadSnapshotFile(path string) (livefeed.Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return livefeed.Snapshot{}, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer file.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(file); err != nil {
		return livefeed.Snapshot{}, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	snapshot, err := apifootball.DecodeSnapshot(buf.B)
	if err != nil {
		return livefeed.Snapshot{}, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return snapshot, nil
}
