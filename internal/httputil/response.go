package httputil

import (
	"encoding/json"
	"net/http"
)

// dataEnvelope wraps every successful response body.
type dataEnvelope struct {
	Data interface{} `json:"data"`
}

// errorEnvelope wraps every failure response body. Detail is either a plain
// message or a map of field errors.
type errorEnvelope struct {
	Error interface{} `json:"error"`
}

// RespondJSON writes a JSON response with the given status code.
// It marshals first so an encoding failure never produces a partial body
// after headers are sent.
func RespondJSON(w http.ResponseWriter, status int, body interface{}) {
	payload, err := json.Marshal(body)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondData writes a success response in the {"data": ...} envelope.
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, dataEnvelope{Data: data})
}

// RespondError writes a failure response in the {"error": ...} envelope.
// Detail may be a string or a field-error map; nothing else ever reaches
// the caller.
func RespondError(w http.ResponseWriter, status int, detail interface{}) {
	RespondJSON(w, status, errorEnvelope{Error: detail})
}
