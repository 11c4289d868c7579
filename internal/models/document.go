package models

// UploadedDocument is the raw content of a single uploaded résumé.
// It lives for one request only.
type UploadedDocument struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ImagePayload is the media-type-tagged, base64-encoded image of one
// rendered page, ready to be attached to a model request.
type ImagePayload struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}
