package model

// Domain constants shared across handler, validation, and storage packages.
const (
	ContentTypeOctetStream = "application/octet-stream"
	MaxFileSizeBytes       = int64(10_485_760) // 10 MB
	MetadataTTLSeconds     = int64(2_592_000)  // 30 days
)
