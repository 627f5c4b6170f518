package page

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// maxFormBytes bounds editor submissions.
const maxFormBytes = 1 << 20

// highlightRequest is the JSON body for POST /api/highlight.
type highlightRequest struct {
	Code string `json:"code"`
}

// highlightResponse is the JSON response for POST /api/highlight.
type highlightResponse struct {
	HTML string `json:"html"`
}

// RegisterRoutes mounts the page, its assets and the highlight API on r.
func (c *Composer) RegisterRoutes(r chi.Router) {
	r.Get("/", c.handleIndex)
	r.Post("/", c.handleSubmit)
	r.Post("/api/highlight", c.handleHighlight)
	r.Get("/highlight.css", c.handleCSS)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS()))))
}

func (c *Composer) handleIndex(w http.ResponseWriter, r *http.Request) {
	c.writePage(w, View{})
}

func (c *Composer) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	code := r.PostFormValue("code")
	execute := r.PostFormValue("action") == "execute"
	c.writePage(w, c.Compose(r.Context(), code, execute))
}

func (c *Composer) writePage(w http.ResponseWriter, v View) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(w, v); err != nil {
		log.Printf("page: render: %v", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func (c *Composer) handleHighlight(w http.ResponseWriter, r *http.Request) {
	var req highlightRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFormBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Code == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "code is required"})
		return
	}
	writeJSON(w, http.StatusOK, highlightResponse{HTML: string(c.hl.Highlight(req.Code))})
}

func (c *Composer) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(c.hl.CSS()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
