package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	journeysdomain "journeys-app-go/internal/domain/journeys"
	"github.com/go-chi/chi/v5"
	"gorm.io/datatypes"
)

type createJourneyRequest struct {
	UserID           string          `json:"user_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	JourneyType      string          `json:"journey_type"`
	DepartureDate    string          `json:"departure_date"`
	ReturnDate       string          `json:"return_date"`
	Legs             json.RawMessage `json:"legs"`
	Keywords         json.RawMessage `json:"keywords"`
	AIStory          string          `json:"ai_story"`
	SimilarityScore  float64         `json:"similarity_score"`
	RarityScore      *float64        `json:"rarity_score"`
	CulturalInsights json.RawMessage `json:"cultural_insights"`
	Visibility       string          `json:"visibility"`
}

type updateJourneyRequest struct {
	Title            *string         `json:"title"`
	Description      *string         `json:"description"`
	JourneyType      *string         `json:"journey_type"`
	DepartureDate    *string         `json:"departure_date"`
	ReturnDate       *string         `json:"return_date"`
	Legs             json.RawMessage `json:"legs"`
	Keywords         json.RawMessage `json:"keywords"`
	AIStory          *string         `json:"ai_story"`
	SimilarityScore  *float64        `json:"similarity_score"`
	RarityScore      *float64        `json:"rarity_score"`
	CulturalInsights json.RawMessage `json:"cultural_insights"`
	Visibility       *string         `json:"visibility"`
}

type likeJourneyRequest struct {
	UserID string `json:"user_id"`
}

type journeyResponse struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	JourneyType      string          `json:"journey_type"`
	DepartureDate    string          `json:"departure_date"`
	ReturnDate       string          `json:"return_date"`
	Legs             json.RawMessage `json:"legs"`
	Keywords         json.RawMessage `json:"keywords"`
	AIStory          string          `json:"ai_story"`
	SimilarityScore  float64         `json:"similarity_score"`
	RarityScore      float64         `json:"rarity_score"`
	CulturalInsights json.RawMessage `json:"cultural_insights"`
	Visibility       string          `json:"visibility"`
	LikesCount       int             `json:"likes_count"`
	ViewsCount       int             `json:"views_count"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type likesCountResponse struct {
	LikesCount int `json:"likes_count"`
}

func coalesceJSON(value datatypes.JSON, fallback string) json.RawMessage {
	if len(value) == 0 {
		return json.RawMessage(fallback)
	}
	return json.RawMessage(value)
}

func toJourneyResponse(journey journeysdomain.Journey) journeyResponse {
	return journeyResponse{
		ID:               journey.ID,
		UserID:           journey.UserID,
		Title:            journey.Title,
		Description:      journey.Description,
		JourneyType:      journey.JourneyType,
		DepartureDate:    formatDate(journey.DepartureDate),
		ReturnDate:       formatDate(journey.ReturnDate),
		Legs:             coalesceJSON(journey.Legs, "[]"),
		Keywords:         coalesceJSON(journey.Keywords, "[]"),
		AIStory:          journey.AIStory,
		SimilarityScore:  journey.SimilarityScore,
		RarityScore:      journey.RarityScore,
		CulturalInsights: coalesceJSON(journey.CulturalInsights, "{}"),
		Visibility:       journey.Visibility,
		LikesCount:       journey.LikesCount,
		ViewsCount:       journey.ViewsCount,
		CreatedAt:        journey.CreatedAt,
		UpdatedAt:        journey.UpdatedAt,
	}
}

func journeyListResponse(journeys []journeysdomain.Journey) []journeyResponse {
	response := make([]journeyResponse, 0, len(journeys))
	for _, journey := range journeys {
		response = append(response, toJourneyResponse(journey))
	}
	return response
}

func (h *Handlers) ListJourneyFeed(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntParam(r.URL.Query().Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid limit")
		return
	}

	journeys, err := h.Journeys.ListFeed(r.Context(), limit)
	if err != nil {
		h.log.InternalError("journeys.feed: query failed", err)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, journeyListResponse(journeys))
}

func (h *Handlers) ListUserJourneys(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	journeys, err := h.Journeys.ListByUser(r.Context(), userID)
	if err != nil {
		h.log.InternalError("journeys.list_user: query failed", err, "user_id", userID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, journeyListResponse(journeys))
}

func (h *Handlers) CreateJourney(w http.ResponseWriter, r *http.Request) {
	var req createJourneyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id and title are required")
		return
	}
	if len(req.Legs) == 0 || string(req.Legs) == "null" {
		writeError(w, http.StatusBadRequest, "invalid_request", "legs are required")
		return
	}

	departure, err := parseDateParam(req.DepartureDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid departure_date")
		return
	}
	ret, err := parseDateParam(req.ReturnDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid return_date")
		return
	}

	journey, err := h.Journeys.CreateJourney(r.Context(), journeysdomain.CreateJourneyInput{
		UserID:           req.UserID,
		Title:            req.Title,
		Description:      req.Description,
		JourneyType:      req.JourneyType,
		DepartureDate:    departure,
		ReturnDate:       ret,
		Legs:             datatypes.JSON(req.Legs),
		Keywords:         datatypes.JSON(req.Keywords),
		AIStory:          req.AIStory,
		SimilarityScore:  req.SimilarityScore,
		RarityScore:      req.RarityScore,
		CulturalInsights: datatypes.JSON(req.CulturalInsights),
		Visibility:       req.Visibility,
	})
	if err != nil {
		h.log.InternalError("journeys.create: insert failed", err, "user_id", req.UserID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toJourneyResponse(*journey))
}

func (h *Handlers) GetJourney(w http.ResponseWriter, r *http.Request) {
	journeyID := chi.URLParam(r, "journey_id")

	journey, err := h.Journeys.GetJourney(r.Context(), journeyID)
	if err != nil {
		if errors.Is(err, journeysdomain.ErrJourneyNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "journey not found")
			return
		}
		h.log.InternalError("journeys.get: query failed", err, "journey_id", journeyID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toJourneyResponse(*journey))
}

func (h *Handlers) UpdateJourney(w http.ResponseWriter, r *http.Request) {
	journeyID := chi.URLParam(r, "journey_id")

	var req updateJourneyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	input := journeysdomain.UpdateJourneyInput{
		Title:           req.Title,
		Description:     req.Description,
		JourneyType:     req.JourneyType,
		AIStory:         req.AIStory,
		SimilarityScore: req.SimilarityScore,
		RarityScore:     req.RarityScore,
		Visibility:      req.Visibility,
	}
	if req.DepartureDate != nil {
		parsed, err := parseDateParam(*req.DepartureDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid departure_date")
			return
		}
		input.DepartureDate = parsed
	}
	if req.ReturnDate != nil {
		parsed, err := parseDateParam(*req.ReturnDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid return_date")
			return
		}
		input.ReturnDate = parsed
	}
	if req.Legs != nil && string(req.Legs) != "null" {
		input.Legs = datatypes.JSON(req.Legs)
	}
	if req.Keywords != nil && string(req.Keywords) != "null" {
		input.Keywords = datatypes.JSON(req.Keywords)
	}
	if req.CulturalInsights != nil && string(req.CulturalInsights) != "null" {
		input.CulturalInsights = datatypes.JSON(req.CulturalInsights)
	}

	journey, err := h.Journeys.UpdateJourney(r.Context(), journeyID, input)
	if err != nil {
		switch {
		case errors.Is(err, journeysdomain.ErrEmptyUpdate):
			writeError(w, http.StatusBadRequest, "invalid_request", "no fields to update")
		case errors.Is(err, journeysdomain.ErrJourneyNotFound):
			writeError(w, http.StatusNotFound, "not_found", "journey not found")
		default:
			h.log.InternalError("journeys.update: update failed", err, "journey_id", journeyID)
			writeInternalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, toJourneyResponse(*journey))
}

func (h *Handlers) DeleteJourney(w http.ResponseWriter, r *http.Request) {
	journeyID := chi.URLParam(r, "journey_id")

	if err := h.Journeys.DeleteJourney(r.Context(), journeyID); err != nil {
		h.log.InternalError("journeys.delete: delete failed", err, "journey_id", journeyID)
		writeInternalError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) LikeJourney(w http.ResponseWriter, r *http.Request) {
	journeyID := chi.URLParam(r, "journey_id")

	// The body is optional; a user_id, when present, also records a like row.
	var req likeJourneyRequest
	_ = decodeJSON(r, &req)

	count, err := h.Journeys.LikeJourney(r.Context(), journeyID, strings.TrimSpace(req.UserID))
	if err != nil {
		if errors.Is(err, journeysdomain.ErrJourneyNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "journey not found")
			return
		}
		h.log.InternalError("journeys.like: increment failed", err, "journey_id", journeyID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, likesCountResponse{LikesCount: count})
}
