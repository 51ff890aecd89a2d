package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consogab-me/models"
	"consogab-me/service"
)

func TestUploadTrackerBatchLifecycle(t *testing.T) {
	t.Parallel()

	tracker := service.NewUploadTracker()
	batchID := tracker.NewBatch([]string{"a.jpg", "b.jpg"})
	require.NotEmpty(t, batchID)

	snapshot, ok := tracker.Snapshot(batchID)
	require.True(t, ok)
	assert.False(t, snapshot.Done)
	require.Len(t, snapshot.Entries, 2)
	assert.Equal(t, models.UploadStatePending, snapshot.Entries[0].State)
	assert.Equal(t, "a.jpg", snapshot.Entries[0].FileName)

	tracker.StartEntry(batchID, 0)
	snapshot, _ = tracker.Snapshot(batchID)
	assert.Equal(t, models.UploadStateUploading, snapshot.Entries[0].State)

	tracker.FinishEntry(batchID, 0, &models.UploadResult{URL: "/media/uploads/a.jpg"})
	snapshot, _ = tracker.Snapshot(batchID)
	assert.Equal(t, models.UploadStateDone, snapshot.Entries[0].State)
	assert.Equal(t, 100, snapshot.Entries[0].Percent)
	require.NotNil(t, snapshot.Entries[0].Result)
	assert.Equal(t, "/media/uploads/a.jpg", snapshot.Entries[0].Result.URL)

	tracker.CompleteBatch(batchID)
	snapshot, _ = tracker.Snapshot(batchID)
	assert.True(t, snapshot.Done)
}

func TestUploadTrackerFailureKeepsBatchGoing(t *testing.T) {
	t.Parallel()

	tracker := service.NewUploadTracker()
	batchID := tracker.NewBatch([]string{"bad.jpg", "good.jpg"})

	tracker.StartEntry(batchID, 0)
	tracker.FailEntry(batchID, 0, errors.New("not a valid image"))

	tracker.StartEntry(batchID, 1)
	tracker.FinishEntry(batchID, 1, &models.UploadResult{URL: "/media/uploads/good.jpg"})
	tracker.CompleteBatch(batchID)

	snapshot, ok := tracker.Snapshot(batchID)
	require.True(t, ok)
	assert.Equal(t, models.UploadStateFailed, snapshot.Entries[0].State)
	assert.Equal(t, 0, snapshot.Entries[0].Percent)
	assert.Equal(t, "not a valid image", snapshot.Entries[0].Error)
	assert.Equal(t, models.UploadStateDone, snapshot.Entries[1].State)
}

func TestUploadTrackerUnknownBatch(t *testing.T) {
	t.Parallel()

	tracker := service.NewUploadTracker()
	_, ok := tracker.Snapshot("nope")
	assert.False(t, ok)

	// Out-of-range updates are ignored, not panics.
	batchID := tracker.NewBatch([]string{"a.jpg"})
	tracker.StartEntry(batchID, 5)
	tracker.FinishEntry("nope", 0, nil)
	tracker.FailEntry(batchID, -1, errors.New("boom"))
}
