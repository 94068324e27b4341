package model

// UploadResponse is returned on a successful POST /uploads request.
type UploadResponse struct {
	FileID    string `json:"fileId"`
	Path      string `json:"path"`
	PublicURL string `json:"publicUrl"`
	SizeBytes int64  `json:"sizeBytes"`
	CreatedAt string `json:"createdAt"`
}

// ErrorResponse is returned for any failed API request. Error carries a
// stable code (validation codes or a failure category), Message the detail.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
