package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	memoriesdomain "journeys-app-go/internal/domain/memories"
	"github.com/go-chi/chi/v5"
	"gorm.io/datatypes"
)

type createMemoryRequest struct {
	JourneyID      string          `json:"journey_id"`
	OriginalUserID string          `json:"original_user_id"`
	Title          string          `json:"title"`
	Story          string          `json:"story"`
	Location       string          `json:"location"`
	TravelType     string          `json:"travel_type"`
	Keywords       json.RawMessage `json:"keywords"`
}

// memoryResponse deliberately has no original_user_id field; anonymity is the
// point of the resource.
type memoryResponse struct {
	ID         string          `json:"id"`
	JourneyID  string          `json:"journey_id"`
	Title      string          `json:"title"`
	Story      string          `json:"story"`
	Location   string          `json:"location"`
	TravelType string          `json:"travel_type"`
	Keywords   json.RawMessage `json:"keywords"`
	CreatedAt  time.Time       `json:"created_at"`
}

type createExchangeRequest struct {
	User1ID   string `json:"user1_id"`
	User2ID   string `json:"user2_id"`
	Memory1ID string `json:"memory1_id"`
	Memory2ID string `json:"memory2_id"`
}

type exchangeResponse struct {
	ID        string    `json:"id"`
	User1ID   string    `json:"user1_id"`
	User2ID   string    `json:"user2_id"`
	Memory1ID string    `json:"memory1_id"`
	Memory2ID string    `json:"memory2_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toMemoryResponse(memory memoriesdomain.AnonymousMemory) memoryResponse {
	return memoryResponse{
		ID:         memory.ID,
		JourneyID:  memory.JourneyID,
		Title:      memory.Title,
		Story:      memory.Story,
		Location:   memory.Location,
		TravelType: memory.TravelType,
		Keywords:   coalesceJSON(memory.Keywords, "[]"),
		CreatedAt:  memory.CreatedAt,
	}
}

func toExchangeResponse(exchange memoriesdomain.MemoryExchange) exchangeResponse {
	return exchangeResponse{
		ID:        exchange.ID,
		User1ID:   exchange.User1ID,
		User2ID:   exchange.User2ID,
		Memory1ID: exchange.Memory1ID,
		Memory2ID: exchange.Memory2ID,
		CreatedAt: exchange.CreatedAt,
	}
}

func (h *Handlers) ListMemories(w http.ResponseWriter, r *http.Request) {
	travelType := strings.TrimSpace(r.URL.Query().Get("travel_type"))

	stories, err := h.Memories.ListMemories(r.Context(), travelType)
	if err != nil {
		h.log.InternalError("memories.list: query failed", err, "travel_type", travelType)
		writeInternalError(w, err)
		return
	}

	response := make([]memoryResponse, 0, len(stories))
	for _, memory := range stories {
		response = append(response, toMemoryResponse(memory))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateMemory(w http.ResponseWriter, r *http.Request) {
	var req createMemoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.JourneyID) == "" || strings.TrimSpace(req.OriginalUserID) == "" ||
		strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Story) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "journey_id, original_user_id, title and story are required")
		return
	}

	memory, err := h.Memories.CreateMemory(r.Context(), memoriesdomain.CreateMemoryInput{
		JourneyID:      req.JourneyID,
		OriginalUserID: req.OriginalUserID,
		Title:          req.Title,
		Story:          req.Story,
		Location:       req.Location,
		TravelType:     req.TravelType,
		Keywords:       datatypes.JSON(req.Keywords),
	})
	if err != nil {
		h.log.InternalError("memories.create: insert failed", err, "journey_id", req.JourneyID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMemoryResponse(*memory))
}

func (h *Handlers) ListExchanges(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	exchanges, err := h.Memories.ListExchanges(r.Context(), userID)
	if err != nil {
		h.log.InternalError("exchanges.list: query failed", err, "user_id", userID)
		writeInternalError(w, err)
		return
	}

	response := make([]exchangeResponse, 0, len(exchanges))
	for _, exchange := range exchanges {
		response = append(response, toExchangeResponse(exchange))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateExchange(w http.ResponseWriter, r *http.Request) {
	var req createExchangeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.User1ID) == "" || strings.TrimSpace(req.User2ID) == "" ||
		strings.TrimSpace(req.Memory1ID) == "" || strings.TrimSpace(req.Memory2ID) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "user1_id, user2_id, memory1_id and memory2_id are required")
		return
	}

	exchange, err := h.Memories.CreateExchange(r.Context(), memoriesdomain.CreateExchangeInput{
		User1ID:   req.User1ID,
		User2ID:   req.User2ID,
		Memory1ID: req.Memory1ID,
		Memory2ID: req.Memory2ID,
	})
	if err != nil {
		h.log.InternalError("exchanges.create: insert failed", err)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toExchangeResponse(*exchange))
}
