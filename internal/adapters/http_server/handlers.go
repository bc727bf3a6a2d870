package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"event_recommender/internal/adapters/observability"
	"event_recommender/internal/app"
	"event_recommender/internal/domain"
)

type Handlers struct {
	Rec    *app.RecommendService
	Search *app.SearchService
	Fav    *app.FavoriteService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/recommendations", h.recommend)
	s.mux.Get("/v1/search", h.search)
	s.mux.Get("/v1/history", h.listHistory)
	s.mux.Post("/v1/history", h.addHistory)
	s.mux.Delete("/v1/history", h.removeHistory)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// parseLocation reads and validates user_id/lat/lon query parameters.
// Coordinate validation lives here at the request boundary; the services
// pass coordinates through untouched.
func parseLocation(r *http.Request) (userID string, c domain.Coordinate, ok bool, reason string) {
	userID = r.URL.Query().Get("user_id")
	if userID == "" {
		return "", c, false, "user_id is required"
	}
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		return "", c, false, "lat must be a number"
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		return "", c, false, "lon must be a number"
	}
	c = domain.Coordinate{Lat: lat, Lon: lon}
	if !c.Valid() {
		return "", c, false, "lat/lon out of range"
	}
	return userID, c, true, ""
}

func (h *Handlers) recommend(w http.ResponseWriter, r *http.Request) {
	userID, loc, ok, reason := parseLocation(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid request", reason)
		return
	}

	items, err := h.Rec.Recommend(r.Context(), userID, loc.Lat, loc.Lon)
	if err != nil {
		observability.ObserveRecommendation("error", 0)
		log.Error().Err(err).Str("user_id", userID).Msg("recommendation failed")
		writeProblem(w, http.StatusBadGateway, "Recommendation failed", "a backing service is unavailable")
		return
	}
	observability.ObserveRecommendation("ok", len(items))
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	userID, loc, ok, reason := parseLocation(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid request", reason)
		return
	}

	results, err := h.Search.SearchNearby(r.Context(), userID, loc.Lat, loc.Lon)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("search failed")
		writeProblem(w, http.StatusBadGateway, "Search failed", "a backing service is unavailable")
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *Handlers) listHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid request", "user_id is required")
		return
	}

	items, err := h.Fav.List(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("history lookup failed")
		writeProblem(w, http.StatusBadGateway, "History lookup failed", "a backing service is unavailable")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type historyRequest struct {
	UserID    string   `json:"user_id"`
	Favorites []string `json:"favorites"`
}

func (h *Handlers) addHistory(w http.ResponseWriter, r *http.Request) {
	var req historyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid request", "body must be JSON with user_id and favorites")
		return
	}
	if err := h.Fav.Add(r.Context(), req.UserID, req.Favorites); err != nil {
		log.Error().Err(err).Str("user_id", req.UserID).Msg("add favorites failed")
		writeProblem(w, http.StatusBadGateway, "Update failed", "a backing service is unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": "SUCCESS"})
}

func (h *Handlers) removeHistory(w http.ResponseWriter, r *http.Request) {
	var req historyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid request", "body must be JSON with user_id and favorites")
		return
	}
	if err := h.Fav.Remove(r.Context(), req.UserID, req.Favorites); err != nil {
		log.Error().Err(err).Str("user_id", req.UserID).Msg("remove favorites failed")
		writeProblem(w, http.StatusBadGateway, "Update failed", "a backing service is unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": "SUCCESS"})
}
