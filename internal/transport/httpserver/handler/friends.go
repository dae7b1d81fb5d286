package handler

import (
	"net/http"
	"strings"
	"time"

	friendsdomain "journeys-app-go/internal/domain/friends"
	"github.com/go-chi/chi/v5"
)

type addFriendRequest struct {
	UserID       string `json:"user_id"`
	FriendID     string `json:"friend_id"`
	FriendName   string `json:"friend_name"`
	FriendEmail  string `json:"friend_email"`
	FriendAvatar string `json:"friend_avatar"`
	Status       string `json:"status"`
}

type friendResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	FriendID     string    `json:"friend_id"`
	FriendName   string    `json:"friend_name"`
	FriendEmail  string    `json:"friend_email"`
	FriendAvatar string    `json:"friend_avatar"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func toFriendResponse(friend friendsdomain.UserFriend) friendResponse {
	return friendResponse{
		ID:           friend.ID,
		UserID:       friend.UserID,
		FriendID:     friend.FriendID,
		FriendName:   friend.FriendName,
		FriendEmail:  friend.FriendEmail,
		FriendAvatar: friend.FriendAvatar,
		Status:       friend.Status,
		CreatedAt:    friend.CreatedAt,
	}
}

func (h *Handlers) ListFriends(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id is required")
		return
	}

	list, err := h.Friends.ListFriends(r.Context(), userID)
	if err != nil {
		h.log.InternalError("friends.list: query failed", err, "user_id", userID)
		writeInternalError(w, err)
		return
	}

	response := make([]friendResponse, 0, len(list))
	for _, friend := range list {
		response = append(response, toFriendResponse(friend))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) AddFriend(w http.ResponseWriter, r *http.Request) {
	var req addFriendRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.FriendID) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id and friend_id are required")
		return
	}

	friend, err := h.Friends.AddFriend(r.Context(), friendsdomain.AddFriendInput{
		UserID:       req.UserID,
		FriendID:     req.FriendID,
		FriendName:   req.FriendName,
		FriendEmail:  req.FriendEmail,
		FriendAvatar: req.FriendAvatar,
		Status:       req.Status,
	})
	if err != nil {
		h.log.InternalError("friends.add: insert failed", err, "user_id", req.UserID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFriendResponse(*friend))
}

func (h *Handlers) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	friendID := chi.URLParam(r, "friend_id")
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id is required")
		return
	}

	if err := h.Friends.RemoveFriend(r.Context(), userID, friendID); err != nil {
		h.log.InternalError("friends.remove: delete failed", err, "user_id", userID, "friend_id", friendID)
		writeInternalError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
