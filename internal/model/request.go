package model

// UploadRequest is the JSON body sent by clients to POST /uploads.
//
// UserID is never trusted from the wire: the handler overwrites it with the
// uid of the verified caller before the request reaches the orchestrator.
// TargetPath must live under the caller's namespace, users/<uid>/.
type UploadRequest struct {
	UserID      string `json:"userId"`
	TargetPath  string `json:"targetPath"`
	Data        []byte `json:"data"` // base64 on the wire
	ContentType string `json:"contentType"`
}
