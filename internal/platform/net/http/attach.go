package http

import (
	"fmt"
	stdhttp "net/http"
)

// Attachment writes body as a file download with the given content type.
// The filename lands in Content-Disposition so browsers save rather than render
func Attachment(w stdhttp.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(stdhttp.StatusOK)
	_, _ = w.Write(body)
}

// AttachmentCSV writes body as a CSV download
func AttachmentCSV(w stdhttp.ResponseWriter, filename string, body []byte) {
	Attachment(w, "text/csv; charset=utf-8", filename, body)
}

// ExportError writes the flat failure body used by export endpoints.
// Exports don't use the Envelope shape: clients expect {message, error} with a 500
func ExportError(w stdhttp.ResponseWriter, msg string, err error) {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	JSON(w, stdhttp.StatusInternalServerError, map[string]string{
		"message": msg,
		"error":   detail,
	})
}
