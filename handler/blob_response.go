package handler

import (
	"net/http"
	"strconv"
)

type blobResponse struct {
	contentType string
	data        []byte
}

func (b blobResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", b.contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b.data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(b.data)
	return err
}

// Blob writes data with the given content type.
func Blob(contentType string, data []byte) Response {
	return blobResponse{contentType: contentType, data: data}
}
