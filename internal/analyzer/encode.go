package analyzer

import (
	"encoding/base64"
	"io"
)

// EncodedDocument is a policy document encoded for transport inside a JSON
// request body, tagged with its declared media type.
type EncodedDocument struct {
	Data     string
	MimeType string
}

// EncodeDocument buffers the full document and base64-encodes it. Document
// bytes are never altered or reinterpreted. Documents are assumed small
// enough (tens of MB) to hold in memory.
func EncodeDocument(r io.Reader, contentType string) (EncodedDocument, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return EncodedDocument{}, &ReadError{Err: err}
	}
	return EncodedDocument{
		Data:     base64.StdEncoding.EncodeToString(raw),
		MimeType: contentType,
	}, nil
}
