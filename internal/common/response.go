package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"euler_offline/internal/corpus"
)

type ErrorResponse struct {
	Error string `json:"error"`
	// Set for corpus parse failures so the offending segment can be shown verbatim.
	Segment int      `json:"segment,omitempty"`
	Lines   []string `json:"lines,omitempty"`
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, ErrorResponse{Error: message})
}

// RespondWithDomainError picks the status from err and attaches parse details
// when err carries a corpus.ParseError. Unmapped errors are reported as
// ErrInternalServer without their text.
func RespondWithDomainError(w http.ResponseWriter, err error) {
	code := HTTPStatusFromError(err)
	resp := ErrorResponse{Error: err.Error()}
	if code == http.StatusInternalServerError {
		resp.Error = ErrInternalServer.Error()
	}
	var parseErr *corpus.ParseError
	if errors.As(err, &parseErr) {
		resp.Segment = parseErr.Segment
		resp.Lines = parseErr.Lines
	}
	RespondWithJSON(w, code, resp)
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
