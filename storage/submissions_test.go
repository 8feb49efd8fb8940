package storage

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xb0b1/portfolio/models"
)

func readSubmissions(t *testing.T, path string) []Submission {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out []Submission
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var s Submission
		require.NoError(t, json.Unmarshal(sc.Bytes(), &s))
		out = append(out, s)
	}
	require.NoError(t, sc.Err())
	return out
}

func TestSubmissionLogRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "submissions.jsonl")

	sl, err := NewSubmissionLog(path, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sl.Count())

	s := sl.Record(models.ContactSubmission{Name: "Ada", Email: "ada@example.com", Message: "Hello from the test"}, "fr")
	require.NoError(t, sl.Close())

	_, err = uuid.Parse(s.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), sl.Count())

	got := readSubmissions(t, path)
	require.Len(t, got, 1)
	assert.Equal(t, s.ID, got[0].ID)
	assert.Equal(t, "Ada", got[0].Name)
	assert.Equal(t, "fr", got[0].Lang)
}

func TestSubmissionLogConcurrentRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.jsonl")
	sl, err := NewSubmissionLog(path, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sl.Record(models.ContactSubmission{Name: "n", Email: "n@example.com", Message: "concurrent message"}, "en")
		}()
	}
	wg.Wait()
	require.NoError(t, sl.Close())

	assert.Equal(t, int64(20), sl.Count())
	assert.Len(t, readSubmissions(t, path), 20)
}

func TestSubmissionLogReloadsCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.jsonl")

	first, err := NewSubmissionLog(path, nil)
	require.NoError(t, err)
	first.Record(models.ContactSubmission{Name: "a", Email: "a@example.com", Message: "first message"}, "en")
	first.Record(models.ContactSubmission{Name: "b", Email: "b@example.com", Message: "second message"}, "en")
	require.NoError(t, first.Close())

	second, err := NewSubmissionLog(path, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Count())
}

func TestSubmissionLogReportsWriteErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocked")

	var mu sync.Mutex
	var errs []error
	sl, err := NewSubmissionLog(path, func(err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, err)
	})
	require.NoError(t, err)

	// A directory where the file should be makes every append fail.
	require.NoError(t, os.Mkdir(path, 0o755))

	sl.Record(models.ContactSubmission{Name: "a", Email: "a@example.com", Message: "will not persist"}, "en")
	require.NoError(t, sl.Close())

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, errs, 1)
}
