package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/0xb0b1/portfolio/models"
)

// Submission is one accepted contact message as written to the log.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Lang      string    `json:"lang,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// SubmissionLog appends contact submissions to a JSON-lines file.
type SubmissionLog struct {
	mu       sync.Mutex
	wg       sync.WaitGroup
	count    int64
	filePath string
	onError  func(error)
}

// NewSubmissionLog creates the log, creating parent directories and counting
// lines already present in filePath.
func NewSubmissionLog(filePath string, onError func(error)) (*SubmissionLog, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return nil, fmt.Errorf("submission log dir: %w", err)
	}
	if onError == nil {
		onError = func(error) {}
	}

	sl := &SubmissionLog{
		filePath: filePath,
		onError:  onError,
	}

	// Try to load existing count
	if err := sl.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return sl, nil
}

// load counts the entries already in the file.
func (sl *SubmissionLog) load() error {
	data, err := os.ReadFile(sl.filePath)
	if err != nil {
		return err
	}

	for _, b := range data {
		if b == '\n' {
			sl.count++
		}
	}
	return nil
}

// append writes one entry to the end of the file.
func (sl *SubmissionLog) append(s Submission) error {
	line, err := json.Marshal(s)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(sl.filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// Record stamps c with an id and time, counts it and persists it in the
// background. The returned Submission is what will be written.
func (sl *SubmissionLog) Record(c models.ContactSubmission, lang string) Submission {
	s := Submission{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		Lang:      lang,
		Timestamp: time.Now().UTC(),
	}

	sl.mu.Lock()
	sl.count++
	sl.mu.Unlock()

	// Fire-and-forget save - the request does not wait on file I/O
	sl.wg.Add(1)
	go func() {
		defer sl.wg.Done()
		sl.mu.Lock()
		defer sl.mu.Unlock()
		if err := sl.append(s); err != nil {
			sl.onError(fmt.Errorf("append submission %s: %w", s.ID, err))
		}
	}()

	return s
}

// Count returns the number of recorded submissions.
func (sl *SubmissionLog) Count() int64 {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.count
}

// Close waits for pending writes.
func (sl *SubmissionLog) Close() error {
	sl.wg.Wait()
	return nil
}
