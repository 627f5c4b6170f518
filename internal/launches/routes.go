package launches

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// listResponse is the JSON response for GET /api/launches.
type listResponse struct {
	Total    int      `json:"total"`
	Launches []Launch `json:"launches"`
}

// RegisterRoutes mounts launch endpoints under /api/launches on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/api/launches", handleList(store))
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := DefaultLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a number"})
				return
			}
			limit = n
		}

		list, err := store.List(r.Context(), limit)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		total, err := store.Count(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if list == nil {
			list = []Launch{}
		}

		writeJSON(w, http.StatusOK, listResponse{Total: total, Launches: list})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
