// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// UploadPathPrefix is the public route under which stored blobs are served.
const UploadPathPrefix = "/uploads/"

// Multipart form fields that carry files.
const (
	FormFieldImage  = "image"
	FormFieldTinDoc = "tinDoc"
)
