package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	circlesdomain "journeys-app-go/internal/domain/circles"
	"github.com/go-chi/chi/v5"
)

type createCircleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     string `json:"owner_id"`
}

type addCircleMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type shareCircleJourneyRequest struct {
	JourneyID string `json:"journey_id"`
	SharedBy  string `json:"shared_by"`
}

type circleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	MemberCount int64     `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type circleMemberResponse struct {
	ID       string    `json:"id"`
	CircleID string    `json:"circle_id"`
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type circleJourneyResponse struct {
	ID        string    `json:"id"`
	CircleID  string    `json:"circle_id"`
	JourneyID string    `json:"journey_id"`
	SharedBy  string    `json:"shared_by"`
	SharedAt  time.Time `json:"shared_at"`
}

type circleDetailResponse struct {
	circleResponse
	Members  []circleMemberResponse  `json:"members"`
	Journeys []circleJourneyResponse `json:"journeys"`
}

func toCircleMemberResponse(member circlesdomain.MemoryCircleMember) circleMemberResponse {
	return circleMemberResponse{
		ID:       member.ID,
		CircleID: member.CircleID,
		UserID:   member.UserID,
		Role:     member.Role,
		JoinedAt: member.JoinedAt,
	}
}

func (h *Handlers) ListCircles(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))

	circles, err := h.Circles.ListCircles(r.Context(), userID)
	if err != nil {
		h.log.InternalError("circles.list: query failed", err, "user_id", userID)
		writeInternalError(w, err)
		return
	}

	response := make([]circleResponse, 0, len(circles))
	for _, circle := range circles {
		response = append(response, circleResponse{
			ID:          circle.ID,
			Name:        circle.Name,
			Description: circle.Description,
			OwnerID:     circle.OwnerID,
			MemberCount: circle.MemberCount,
			CreatedAt:   circle.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateCircle(w http.ResponseWriter, r *http.Request) {
	var req createCircleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.OwnerID) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name and owner_id are required")
		return
	}

	circle, err := h.Circles.CreateCircle(r.Context(), circlesdomain.CreateCircleInput{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		h.log.InternalError("circles.create: insert failed", err, "owner_id", req.OwnerID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, circleResponse{
		ID:          circle.ID,
		Name:        circle.Name,
		Description: circle.Description,
		OwnerID:     circle.OwnerID,
		MemberCount: 1,
		CreatedAt:   circle.CreatedAt,
	})
}

func (h *Handlers) GetCircle(w http.ResponseWriter, r *http.Request) {
	circleID := chi.URLParam(r, "circle_id")

	detail, err := h.Circles.GetCircle(r.Context(), circleID)
	if err != nil {
		if errors.Is(err, circlesdomain.ErrCircleNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "memory circle not found")
			return
		}
		h.log.InternalError("circles.get: query failed", err, "circle_id", circleID)
		writeInternalError(w, err)
		return
	}

	members := make([]circleMemberResponse, 0, len(detail.Members))
	for _, member := range detail.Members {
		members = append(members, toCircleMemberResponse(member))
	}
	journeys := make([]circleJourneyResponse, 0, len(detail.Journeys))
	for _, shared := range detail.Journeys {
		journeys = append(journeys, circleJourneyResponse{
			ID:        shared.ID,
			CircleID:  shared.CircleID,
			JourneyID: shared.JourneyID,
			SharedBy:  shared.SharedBy,
			SharedAt:  shared.SharedAt,
		})
	}

	writeJSON(w, http.StatusOK, circleDetailResponse{
		circleResponse: circleResponse{
			ID:          detail.Circle.ID,
			Name:        detail.Circle.Name,
			Description: detail.Circle.Description,
			OwnerID:     detail.Circle.OwnerID,
			MemberCount: int64(len(detail.Members)),
			CreatedAt:   detail.Circle.CreatedAt,
		},
		Members:  members,
		Journeys: journeys,
	})
}

func (h *Handlers) AddCircleMember(w http.ResponseWriter, r *http.Request) {
	circleID := chi.URLParam(r, "circle_id")

	var req addCircleMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id is required")
		return
	}

	member, err := h.Circles.AddMember(r.Context(), circlesdomain.AddMemberInput{
		CircleID: circleID,
		UserID:   req.UserID,
		Role:     req.Role,
	})
	if err != nil {
		h.log.InternalError("circles.add_member: insert failed", err, "circle_id", circleID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCircleMemberResponse(*member))
}

func (h *Handlers) ShareCircleJourney(w http.ResponseWriter, r *http.Request) {
	circleID := chi.URLParam(r, "circle_id")

	var req shareCircleJourneyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.JourneyID) == "" || strings.TrimSpace(req.SharedBy) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "journey_id and shared_by are required")
		return
	}

	shared, err := h.Circles.ShareJourney(r.Context(), circlesdomain.ShareJourneyInput{
		CircleID:  circleID,
		JourneyID: req.JourneyID,
		SharedBy:  req.SharedBy,
	})
	if err != nil {
		h.log.InternalError("circles.share_journey: insert failed", err, "circle_id", circleID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, circleJourneyResponse{
		ID:        shared.ID,
		CircleID:  shared.CircleID,
		JourneyID: shared.JourneyID,
		SharedBy:  shared.SharedBy,
		SharedAt:  shared.SharedAt,
	})
}
