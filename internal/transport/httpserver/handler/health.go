package handler

import (
	"net/http"
	"time"
)

type healthResponse struct {
	OK   bool   `json:"ok"`
	Time string `json:"time"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		OK:   true,
		Time: time.Now().UTC().Format(time.RFC3339),
	})
}
