package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	apperrors "github.com/bookreview/review-server-go/internal/errors"
	"github.com/bookreview/review-server-go/internal/httputil"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	httputil.WriteJSON(w, status, data)
}

func writeError(w http.ResponseWriter, err error) {
	httputil.WriteError(w, err)
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, httputil.MessageResponse{Message: message})
}

func writeCreated(w http.ResponseWriter, id int64, message string) {
	writeJSON(w, http.StatusCreated, httputil.CreatedResponse{ID: id, Message: message})
}

// decodeBody reads a JSON object into dst. A missing or blank body decodes
// as {}. Malformed JSON is returned as is and ends up as a 500.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	return json.Unmarshal(data, dst)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, apperrors.MethodNotAllowed())
}

// NotFound keeps unknown paths inside the error envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, apperrors.NotFound("Resource"))
}
