package models

// MediaAsset represents an image in a business's media library.
// Assets either come from direct uploads or from a Google Drive folder import;
// imported assets are deduplicated by DriveFileID.
type MediaAsset struct {
	ID          int64  `json:"id"`
	BusinessID  int64  `json:"businessId"`
	DriveFileID string `json:"driveFileId,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	URL         string `json:"url"`
	Path        string `json:"path,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// DriveImage is an image file listed from a Google Drive folder
type DriveImage struct {
	DriveFileID string `json:"driveFileId"`
	FileName    string `json:"fileName"`
	ImageURL    string `json:"imageUrl"`
}

// ImportStatsResponse represents the response of a Drive import run
// Example: {"inserted": 4, "skipped": 11, "total": 15}
type ImportStatsResponse struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}
