package domain

// CoverageStatus is the outcome of stress-testing one scenario against a policy.
type CoverageStatus string

const (
	StatusCovered  CoverageStatus = "covered"
	StatusPartial  CoverageStatus = "partial"
	StatusRejected CoverageStatus = "rejected"
)

// Valid reports whether s is one of the three known coverage statuses.
func (s CoverageStatus) Valid() bool {
	switch s {
	case StatusCovered, StatusPartial, StatusRejected:
		return true
	}
	return false
}

// Urgency ranks how quickly a recommendation should be acted on.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// FileType represents the allowed file types for policy document upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}
