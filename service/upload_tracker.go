package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"consogab-me/models"
)

// UploadTracker keeps per-batch upload progress in memory so clients can poll
// while a multipart batch is processed. The percentage shown while a file is
// in flight is simulated: it is advanced on a timer and jumps to 100 when the
// real upload resolves. There is no real progress channel behind it.
type UploadTracker struct {
	mu      sync.RWMutex
	batches map[string]*uploadBatch
	ttl     time.Duration

	// tick interval for the simulated percentage, shortened in tests
	simInterval time.Duration
}

type uploadBatch struct {
	entries   []models.UploadEntry
	done      bool
	createdAt time.Time
}

// DefaultBatchTTL is how long a finished batch stays pollable
const DefaultBatchTTL = 10 * time.Minute

// NewUploadTracker creates an UploadTracker
func NewUploadTracker() *UploadTracker {
	return &UploadTracker{
		batches:     make(map[string]*uploadBatch),
		ttl:         DefaultBatchTTL,
		simInterval: 200 * time.Millisecond,
	}
}

// NewBatch registers a batch of pending files and returns its id
func (t *UploadTracker) NewBatch(fileNames []string) string {
	entries := make([]models.UploadEntry, len(fileNames))
	for i, name := range fileNames {
		entries[i] = models.UploadEntry{FileName: name, State: models.UploadStatePending}
	}

	id := uuid.New().String()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pruneLocked()
	t.batches[id] = &uploadBatch{entries: entries, createdAt: time.Now()}
	return id
}

// StartEntry marks one file as uploading and starts its simulated progress
func (t *UploadTracker) StartEntry(batchID string, index int) {
	t.mu.Lock()
	batch, ok := t.batches[batchID]
	if !ok || index < 0 || index >= len(batch.entries) {
		t.mu.Unlock()
		return
	}
	batch.entries[index].State = models.UploadStateUploading
	batch.entries[index].Percent = 0
	t.mu.Unlock()

	go t.simulateProgress(batchID, index)
}

// simulateProgress bumps the fabricated percentage while the upload is in
// flight, stalling at 90 until the real call resolves.
func (t *UploadTracker) simulateProgress(batchID string, index int) {
	ticker := time.NewTicker(t.simInterval)
	defer ticker.Stop()

	for range ticker.C {
		t.mu.Lock()
		batch, ok := t.batches[batchID]
		if !ok || batch.entries[index].State != models.UploadStateUploading {
			t.mu.Unlock()
			return
		}
		if batch.entries[index].Percent < 90 {
			batch.entries[index].Percent += 10
		}
		t.mu.Unlock()
	}
}

// FinishEntry records a successful upload result
func (t *UploadTracker) FinishEntry(batchID string, index int, result *models.UploadResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	batch, ok := t.batches[batchID]
	if !ok || index < 0 || index >= len(batch.entries) {
		return
	}
	batch.entries[index].State = models.UploadStateDone
	batch.entries[index].Percent = 100
	batch.entries[index].Result = result
}

// FailEntry records a failed upload. The progress entry is cleared; the rest
// of the batch keeps going.
func (t *UploadTracker) FailEntry(batchID string, index int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	batch, ok := t.batches[batchID]
	if !ok || index < 0 || index >= len(batch.entries) {
		return
	}
	batch.entries[index].State = models.UploadStateFailed
	batch.entries[index].Percent = 0
	if err != nil {
		batch.entries[index].Error = err.Error()
	}
}

// CompleteBatch marks a batch as fully processed
func (t *UploadTracker) CompleteBatch(batchID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if batch, ok := t.batches[batchID]; ok {
		batch.done = true
	}
}

// Snapshot returns the current state of a batch
func (t *UploadTracker) Snapshot(batchID string) (models.UploadBatchResponse, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	batch, ok := t.batches[batchID]
	if !ok {
		return models.UploadBatchResponse{}, false
	}
	return models.UploadBatchResponse{
		BatchID: batchID,
		Done:    batch.done,
		Entries: append([]models.UploadEntry(nil), batch.entries...),
	}, true
}

func (t *UploadTracker) pruneLocked() {
	cutoff := time.Now().Add(-t.ttl)
	for id, batch := range t.batches {
		if batch.createdAt.Before(cutoff) {
			delete(t.batches, id)
		}
	}
}
