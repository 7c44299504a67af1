// Package respond writes JSON envelopes for HTTP handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type envelope struct {
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK writes result with 200.
func OK(w http.ResponseWriter, result any) {
	JSON(w, http.StatusOK, envelope{Result: result})
}

// Created writes result with 201.
func Created(w http.ResponseWriter, result any) {
	JSON(w, http.StatusCreated, envelope{Result: result})
}

// Fail writes err with the given status code.
func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, envelope{Error: err.Error()})
}
