package server

import (
	"encoding/json"
	"net/http"
	"time"
)

// envelope is the uniform response shape of every API endpoint. Data holds
// the payload on success and an empty object on failure; ResponseTimeMS is
// the handler's wall time measured from before request decoding.
type envelope struct {
	Success        bool    `json:"success"`
	Message        string  `json:"message"`
	Data           any     `json:"data"`
	ResponseTimeMS float64 `json:"response_time_ms"`
}

func writeSuccess(w http.ResponseWriter, message string, data any, start time.Time) {
	writeEnvelope(w, http.StatusOK, envelope{
		Success: true,
		Message: message,
		Data:    data,
	}, start)
}

func writeFailure(w http.ResponseWriter, status int, message string, start time.Time) {
	writeEnvelope(w, status, envelope{
		Success: false,
		Message: message,
		Data:    struct{}{},
	}, start)
}

func writeEnvelope(w http.ResponseWriter, status int, env envelope, start time.Time) {
	env.ResponseTimeMS = float64(time.Since(start)) / float64(time.Millisecond)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
