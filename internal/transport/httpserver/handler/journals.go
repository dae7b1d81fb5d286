package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	journalsdomain "journeys-app-go/internal/domain/journals"
	"github.com/go-chi/chi/v5"
)

type createJournalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
	CreatorName string `json:"creator_name"`
}

type addJournalMemberRequest struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Role     string `json:"role"`
}

type addJournalEntryRequest struct {
	JournalID string `json:"journal_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Content   string `json:"content"`
	EntryType string `json:"entry_type"`
	ImageURL  string `json:"image_url"`
	Location  string `json:"location"`
}

type journalResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type journalMemberResponse struct {
	ID        string    `json:"id"`
	JournalID string    `json:"journal_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
}

type journalEntryResponse struct {
	ID        string    `json:"id"`
	JournalID string    `json:"journal_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	EntryType string    `json:"entry_type"`
	ImageURL  string    `json:"image_url"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

type journalDetailResponse struct {
	journalResponse
	Members []journalMemberResponse `json:"members"`
	Entries []journalEntryResponse  `json:"entries"`
}

func toJournalResponse(journal journalsdomain.CollaborativeJournal) journalResponse {
	return journalResponse{
		ID:          journal.ID,
		Title:       journal.Title,
		Description: journal.Description,
		CreatedBy:   journal.CreatedBy,
		CreatedAt:   journal.CreatedAt,
		UpdatedAt:   journal.UpdatedAt,
	}
}

func toJournalEntryResponse(entry journalsdomain.JournalEntry) journalEntryResponse {
	return journalEntryResponse{
		ID:        entry.ID,
		JournalID: entry.JournalID,
		UserID:    entry.UserID,
		UserName:  entry.UserName,
		Content:   entry.Content,
		EntryType: entry.EntryType,
		ImageURL:  entry.ImageURL,
		Location:  entry.Location,
		CreatedAt: entry.CreatedAt,
	}
}

func toJournalMemberResponse(member journalsdomain.JournalMember) journalMemberResponse {
	return journalMemberResponse{
		ID:        member.ID,
		JournalID: member.JournalID,
		UserID:    member.UserID,
		UserName:  member.UserName,
		Role:      member.Role,
		JoinedAt:  member.JoinedAt,
	}
}

func (h *Handlers) ListJournals(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))

	journals, err := h.Journals.ListJournals(r.Context(), userID)
	if err != nil {
		h.log.InternalError("journals.list: query failed", err, "user_id", userID)
		writeInternalError(w, err)
		return
	}

	response := make([]journalResponse, 0, len(journals))
	for _, journal := range journals {
		response = append(response, toJournalResponse(journal))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateJournal(w http.ResponseWriter, r *http.Request) {
	var req createJournalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.CreatedBy) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "title and created_by are required")
		return
	}

	journal, err := h.Journals.CreateJournal(r.Context(), journalsdomain.CreateJournalInput{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
		CreatorName: req.CreatorName,
	})
	if err != nil {
		h.log.InternalError("journals.create: insert failed", err, "created_by", req.CreatedBy)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toJournalResponse(*journal))
}

func (h *Handlers) GetJournal(w http.ResponseWriter, r *http.Request) {
	journalID := chi.URLParam(r, "journal_id")

	detail, err := h.Journals.GetJournal(r.Context(), journalID)
	if err != nil {
		if errors.Is(err, journalsdomain.ErrJournalNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "journal not found")
			return
		}
		h.log.InternalError("journals.get: query failed", err, "journal_id", journalID)
		writeInternalError(w, err)
		return
	}

	members := make([]journalMemberResponse, 0, len(detail.Members))
	for _, member := range detail.Members {
		members = append(members, toJournalMemberResponse(member))
	}
	entries := make([]journalEntryResponse, 0, len(detail.Entries))
	for _, entry := range detail.Entries {
		entries = append(entries, toJournalEntryResponse(entry))
	}

	writeJSON(w, http.StatusOK, journalDetailResponse{
		journalResponse: toJournalResponse(detail.Journal),
		Members:         members,
		Entries:         entries,
	})
}

func (h *Handlers) ListJournalEntries(w http.ResponseWriter, r *http.Request) {
	journalID := chi.URLParam(r, "journal_id")

	entries, err := h.Journals.ListEntries(r.Context(), journalID)
	if err != nil {
		h.log.InternalError("journals.list_entries: query failed", err, "journal_id", journalID)
		writeInternalError(w, err)
		return
	}

	response := make([]journalEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, toJournalEntryResponse(entry))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) AddJournalEntry(w http.ResponseWriter, r *http.Request) {
	var req addJournalEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.JournalID) == "" || strings.TrimSpace(req.UserID) == "" ||
		strings.TrimSpace(req.UserName) == "" || strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "journal_id, user_id, user_name and content are required")
		return
	}

	entry, err := h.Journals.AddEntry(r.Context(), journalsdomain.AddEntryInput{
		JournalID: req.JournalID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		Content:   req.Content,
		EntryType: req.EntryType,
		ImageURL:  req.ImageURL,
		Location:  req.Location,
	})
	if err != nil {
		h.log.InternalError("journals.add_entry: insert failed", err, "journal_id", req.JournalID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toJournalEntryResponse(*entry))
}

func (h *Handlers) AddJournalMember(w http.ResponseWriter, r *http.Request) {
	journalID := chi.URLParam(r, "journal_id")

	var req addJournalMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.UserName) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id and user_name are required")
		return
	}

	member, err := h.Journals.AddMember(r.Context(), journalsdomain.AddMemberInput{
		JournalID: journalID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		Role:      req.Role,
	})
	if err != nil {
		h.log.InternalError("journals.add_member: insert failed", err, "journal_id", journalID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toJournalMemberResponse(*member))
}
