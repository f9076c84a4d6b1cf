package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// Status is a point-in-time view of the renderer.
type Status struct {
	FrameTimeMs int64 `json:"frameTimeMs"`
	Animating   bool  `json:"animating"`
	Frames      int64 `json:"frames"`
}

// A StatusSource reports renderer state for the status endpoint.
type StatusSource interface {
	Status() Status
}

type Api struct {
	source StatusSource
}

// NewApi creates an instance of an Api serving status from source.
func NewApi(source StatusSource) *Api {
	a := new(Api)
	a.source = source
	return a
}

func (a *Api) handleStatus(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.source.Status()); err != nil {
		log.Printf("Failed to write status: %v", err)
	}
}

// Serve exposes the status endpoint.
func (a *Api) Serve() {
	http.HandleFunc("/status", a.handleStatus)

	log.Println("Listening...")
	http.ListenAndServe(":3000", nil)
}
