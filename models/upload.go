package models

// UploadConfig constrains a storage upload
type UploadConfig struct {
	Bucket      string `json:"bucket"`
	Folder      string `json:"folder"`
	MaxSize     int64  `json:"maxSize"` // bytes, 0 = default
	ExactWidth  int    `json:"exactWidth,omitempty"`
	ExactHeight int    `json:"exactHeight,omitempty"`
}

// UploadResult is the outcome of a successful storage upload
type UploadResult struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Path string `json:"path"`
}

// Upload entry states
const (
	UploadStatePending   = "pending"
	UploadStateUploading = "uploading"
	UploadStateDone      = "done"
	UploadStateFailed    = "failed"
)

// UploadEntry tracks one file within an upload batch. Percent is a simulated
// progress value advanced on a timer while the real upload is in flight; it is
// cosmetic and jumps to 100 when the upload actually resolves.
type UploadEntry struct {
	FileName string        `json:"fileName"`
	State    string        `json:"state"`
	Percent  int           `json:"percent"`
	Error    string        `json:"error,omitempty"`
	Result   *UploadResult `json:"result,omitempty"`
}

// UploadBatchResponse is a snapshot of an upload batch's progress
type UploadBatchResponse struct {
	BatchID string        `json:"batchId"`
	Done    bool          `json:"done"`
	Entries []UploadEntry `json:"entries"`
}
