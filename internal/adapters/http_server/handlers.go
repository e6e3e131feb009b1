package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/pingvi095/wifi/internal/adapters/observability"
	"github.com/pingvi095/wifi/internal/app"
	"github.com/pingvi095/wifi/internal/domain"
)

type Handlers struct {
	Catalog *app.CatalogService
	Reviews *app.ReviewService
	Admin   *app.AdminService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers, reviewLimiter *rate.Limiter) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/v1/places", h.listPlaces)
	s.mux.Get("/v1/places/{id}", h.getPlace)
	s.mux.Get("/v1/places/{id}/reviews", h.listReviews)
	s.mux.With(Throttle(reviewLimiter)).Post("/v1/places/{id}/reviews", h.submitReview)

	s.mux.Post("/v1/admin/login", h.adminLogin)
	s.mux.Post("/v1/admin/logout", h.adminLogout)
	s.mux.Post("/v1/admin/register", h.adminRegister)
	s.mux.Route("/v1/admin/places", func(r chi.Router) {
		r.Use(RequireAdmin(h.Admin))
		r.Post("/", h.createPlace)
		r.Put("/{id}", h.updatePlace)
		r.Delete("/{id}", h.deletePlace)
	})
}

// ---- wire representations ----

type placeJSON struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Address     string  `json:"address"`
	WifiQuality string  `json:"wifi_quality"`
	WorkHours   string  `json:"work_hours"`
	Description string  `json:"description,omitempty"`
	PhotoPath   string  `json:"photo_path,omitempty"`
	Contact     string  `json:"contact"`
	Rating      float64 `json:"rating"`
}

type reviewJSON struct {
	ID        int64     `json:"id"`
	PlaceID   int64     `json:"place_id"`
	Author    string    `json:"author"`
	Stars     int       `json:"stars"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toPlaceJSON(p domain.Place) placeJSON {
	return placeJSON{
		ID: p.ID, Name: p.Name, Type: p.Type, Address: p.Address,
		WifiQuality: p.WifiQuality, WorkHours: p.WorkHours,
		Description: p.Description, PhotoPath: p.PhotoPath,
		Contact: p.Contact, Rating: p.Rating,
	}
}

func toReviewJSON(rv domain.Review) reviewJSON {
	return reviewJSON{
		ID: rv.ID, PlaceID: rv.PlaceID, Author: rv.Author,
		Stars: rv.Stars, Comment: rv.Comment, CreatedAt: rv.CreatedAt,
	}
}

// ---- helpers ----

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps service errors onto the problem taxonomy: validation
// failures are user-correctable 4xx, everything else is a storage failure.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidWorkHours):
		writeProblem(w, http.StatusBadRequest, "Invalid Input", err.Error())
	case errors.Is(err, domain.ErrBadCredentials):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "invalid credentials")
	case errors.Is(err, domain.ErrAdminExists):
		writeProblem(w, http.StatusConflict, "Conflict", err.Error())
	default:
		writeProblem(w, http.StatusInternalServerError, "Storage Failure", "the operation could not be completed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON body failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCachedJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

var sortModes = map[string]domain.SortMode{
	"":            domain.SortUnspecified,
	"rating-desc": domain.SortRatingDesc,
	"rating-asc":  domain.SortRatingAsc,
	"name-asc":    domain.SortNameAsc,
	"name-desc":   domain.SortNameDesc,
}

// criteriaFromQuery maps URL parameters onto the typed filter value. Hours
// values outside the predefined buckets pass through as free labels; an
// unknown sort is a client error.
func criteriaFromQuery(vals url.Values) (domain.FilterCriteria, error) {
	c := domain.FilterCriteria{
		Query: vals.Get("q"),
		Type:  vals.Get("type"),
		Wifi:  vals.Get("wifi"),
		Hours: domain.HoursBucket(vals.Get("hours")),
	}
	sort, ok := sortModes[vals.Get("sort")]
	if !ok {
		return domain.FilterCriteria{}, errors.New("unknown sort mode")
	}
	c.Sort = sort
	return c, nil
}

// ---- catalog reads ----

func (h *Handlers) listPlaces(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r.URL.Query())
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Sort", err.Error())
		return
	}
	places, err := h.Catalog.ListPlaces(r.Context(), criteria)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]placeJSON, 0, len(places))
	for _, p := range places {
		out = append(out, toPlaceJSON(p))
	}
	writeCachedJSON(w, r, out)
}

func (h *Handlers) getPlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	p, err := h.Catalog.GetPlace(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCachedJSON(w, r, toPlaceJSON(p))
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	reviews, err := h.Catalog.ListReviews(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]reviewJSON, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, toReviewJSON(rv))
	}
	writeCachedJSON(w, r, out)
}

// ---- review submission ----

type submitReviewRequest struct {
	Author  string `json:"author"`
	Stars   int    `json:"stars"`
	Comment string `json:"comment"`
}

func (h *Handlers) submitReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}
	rv, err := h.Reviews.Submit(r.Context(), id, req.Author, req.Stars, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	observability.ReviewsSubmitted.Inc()
	writeJSON(w, http.StatusCreated, toReviewJSON(rv))
}

// ---- admin ----

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handlers) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}
	token, err := h.Admin.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handlers) adminLogout(w http.ResponseWriter, r *http.Request) {
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "missing bearer token")
		return
	}
	if err := h.Admin.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) adminRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}
	if err := h.Admin.Register(r.Context(), req.Username, req.Password); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

type placeRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Address     string `json:"address"`
	WifiQuality string `json:"wifi_quality"`
	WorkHours   string `json:"work_hours"`
	Description string `json:"description"`
	PhotoPath   string `json:"photo_path"`
	Contact     string `json:"contact"`
}

func (pr placeRequest) toDomain(id int64) domain.Place {
	return domain.Place{
		ID: id, Name: pr.Name, Type: pr.Type, Address: pr.Address,
		WifiQuality: pr.WifiQuality, WorkHours: pr.WorkHours,
		Description: pr.Description, PhotoPath: pr.PhotoPath, Contact: pr.Contact,
	}
}

func (h *Handlers) createPlace(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}
	p, err := h.Admin.CreatePlace(r.Context(), req.toDomain(0))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPlaceJSON(p))
}

func (h *Handlers) updatePlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	var req placeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}
	p, err := h.Admin.UpdatePlace(r.Context(), req.toDomain(id))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlaceJSON(p))
}

func (h *Handlers) deletePlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	if err := h.Admin.DeletePlace(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
