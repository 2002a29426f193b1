package models

// Blob is an uploaded file stored inline in a document. The raw bytes
// are never serialized to JSON; handlers expose a hasImage flag and a
// URL pointing at the matching read endpoint instead.
type Blob struct {
	Data        []byte `bson:"data" json:"-"`
	ContentType string `bson:"contentType" json:"-"`
	Filename    string `bson:"filename,omitempty" json:"-"`
}
