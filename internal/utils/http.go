package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// internalErrorBody is written when the response value cannot be encoded.
const internalErrorBody = `{"detail":"Internal Server Error"}`

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header. HTML characters are not escaped.
//
// If encoding fails, nothing of data is written: the response becomes a 500
// with a generic JSON detail and the encoding error is returned.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Message: "ok"}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Detail: "Not Found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	w.Header().Set("Content-Type", "application/json")

	if err := enc.Encode(data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
