package main

import (
	"encoding/json"
	"net/http"
)

func readJSON[T any](r *http.Request) (T, error) {
	var parsed T
	err := json.NewDecoder(r.Body).Decode(&parsed)
	return parsed, err
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, name string) {
	writeJSON(w, code, map[string]string{"error": name})
}

func writeServiceError(w http.ResponseWriter, err error) {
	writeError(w, ErrorStatusCode(err), err.Error())
}
