package api

import (
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pranishr/portfolio-api/models"
)

// blobRef computes the externally visible form of an inline blob: a
// presence flag plus the URL of the matching read endpoint. When no
// blob is stored the fallback URL (an externally hosted image, possibly
// empty) is used instead. Raw bytes never appear in a JSON response.
func blobRef(baseURL, resource string, id primitive.ObjectID, blob *models.Blob, fallback string) (hasImage bool, imageURL *string) {
	if blob != nil && len(blob.Data) > 0 {
		url := fmt.Sprintf("%s/api/%s/%s/image", baseURL, resource, id.Hex())
		return true, &url
	}
	if fallback != "" {
		return false, &fallback
	}
	return false, nil
}

// writeBlob streams stored bytes with the stored mime type, a long-lived
// cache directive and cross-origin-readable headers so the payload can
// be embedded from another origin.
func writeBlob(w http.ResponseWriter, blob *models.Blob) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(blob.Data)
}
