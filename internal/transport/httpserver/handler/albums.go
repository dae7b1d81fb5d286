package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	albumsdomain "journeys-app-go/internal/domain/albums"
	"github.com/go-chi/chi/v5"
)

type createAlbumRequest struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	JourneyID   string `json:"journey_id"`
	Visibility  string `json:"visibility"`
}

type updateAlbumRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	JourneyID   *string `json:"journey_id"`
	Visibility  *string `json:"visibility"`
}

type albumResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	JourneyID   string    `json:"journey_id"`
	Visibility  string    `json:"visibility"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type createPhotoRequest struct {
	UserID     string `json:"user_id"`
	ImageURL   string `json:"image_url"`
	Caption    string `json:"caption"`
	PageNumber int    `json:"page_number"`
	Meta       string `json:"meta"`
}

type updatePhotoRequest struct {
	Caption    *string `json:"caption"`
	PageNumber *int    `json:"page_number"`
	Meta       *string `json:"meta"`
}

type photoResponse struct {
	ID         string    `json:"id"`
	AlbumID    string    `json:"album_id"`
	UserID     string    `json:"user_id"`
	ImageURL   string    `json:"image_url"`
	Caption    string    `json:"caption"`
	PageNumber int       `json:"page_number"`
	Meta       string    `json:"meta"`
	CreatedAt  time.Time `json:"created_at"`
}

type upsertPageRequest struct {
	PageNumber *int   `json:"page_number"`
	Content    string `json:"content"`
}

type pageResponse struct {
	PageNumber int    `json:"page_number"`
	Content    string `json:"content"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func toAlbumResponse(album albumsdomain.Album) albumResponse {
	return albumResponse{
		ID:          album.ID,
		UserID:      album.UserID,
		Title:       album.Title,
		Description: album.Description,
		JourneyID:   album.JourneyID,
		Visibility:  album.Visibility,
		CreatedAt:   album.CreatedAt,
		UpdatedAt:   album.UpdatedAt,
	}
}

func toPhotoResponse(photo albumsdomain.AlbumPhoto) photoResponse {
	return photoResponse{
		ID:         photo.ID,
		AlbumID:    photo.AlbumID,
		UserID:     photo.UserID,
		ImageURL:   photo.ImageURL,
		Caption:    photo.Caption,
		PageNumber: photo.PageNumber,
		Meta:       photo.Meta,
		CreatedAt:  photo.CreatedAt,
	}
}

func (h *Handlers) ListAlbums(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id is required")
		return
	}

	albums, err := h.Albums.ListAlbums(r.Context(), userID)
	if err != nil {
		h.log.InternalError("albums.list: query failed", err, "user_id", userID)
		writeInternalError(w, err)
		return
	}

	response := make([]albumResponse, 0, len(albums))
	for _, album := range albums {
		response = append(response, toAlbumResponse(album))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	var req createAlbumRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id and title are required")
		return
	}

	album, err := h.Albums.CreateAlbum(r.Context(), albumsdomain.CreateAlbumInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		JourneyID:   req.JourneyID,
		Visibility:  req.Visibility,
	})
	if err != nil {
		h.log.InternalError("albums.create: insert failed", err, "user_id", req.UserID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAlbumResponse(*album))
}

func (h *Handlers) GetAlbum(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "album_id")

	album, err := h.Albums.GetAlbum(r.Context(), albumID)
	if err != nil {
		if errors.Is(err, albumsdomain.ErrAlbumNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "album not found")
			return
		}
		h.log.InternalError("albums.get: query failed", err, "album_id", albumID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAlbumResponse(*album))
}

func (h *Handlers) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "album_id")

	var req updateAlbumRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	album, err := h.Albums.UpdateAlbum(r.Context(), albumID, albumsdomain.UpdateAlbumInput{
		Title:       req.Title,
		Description: req.Description,
		JourneyID:   req.JourneyID,
		Visibility:  req.Visibility,
	})
	if err != nil {
		switch {
		case errors.Is(err, albumsdomain.ErrEmptyUpdate):
			writeError(w, http.StatusBadRequest, "invalid_request", "no fields to update")
		case errors.Is(err, albumsdomain.ErrAlbumNotFound):
			writeError(w, http.StatusNotFound, "not_found", "album not found")
		default:
			h.log.InternalError("albums.update: update failed", err, "album_id", albumID)
			writeInternalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, toAlbumResponse(*album))
}

func (h *Handlers) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "album_id")

	if err := h.Albums.DeleteAlbum(r.Context(), albumID); err != nil {
		h.log.InternalError("albums.delete: delete failed", err, "album_id", albumID)
		writeInternalError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListPhotos(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "album_id")

	photos, err := h.Albums.ListPhotos(r.Context(), albumID)
	if err != nil {
		h.log.InternalError("photos.list: query failed", err, "album_id", albumID)
		writeInternalError(w, err)
		return
	}

	response := make([]photoResponse, 0, len(photos))
	for _, photo := range photos {
		response = append(response, toPhotoResponse(photo))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "album_id")

	var req createPhotoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.ImageURL) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing image_url or user_id")
		return
	}

	photo, err := h.Albums.CreatePhoto(r.Context(), albumsdomain.CreatePhotoInput{
		AlbumID:    albumID,
		UserID:     req.UserID,
		ImageURL:   req.ImageURL,
		Caption:    req.Caption,
		PageNumber: req.PageNumber,
		Meta:       req.Meta,
	})
	if err != nil {
		h.log.InternalError("photos.create: insert failed", err, "album_id", albumID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPhotoResponse(*photo))
}

func (h *Handlers) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "album_id")
	photoID := chi.URLParam(r, "photo_id")

	var req updatePhotoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	// An empty body is a no-op here, unlike album and journey updates.
	err := h.Albums.UpdatePhoto(r.Context(), albumID, photoID, albumsdomain.UpdatePhotoInput{
		Caption:    req.Caption,
		PageNumber: req.PageNumber,
		Meta:       req.Meta,
	})
	if err != nil {
		h.log.InternalError("photos.update: update failed", err, "album_id", albumID, "photo_id", photoID)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *Handlers) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "album_id")
	photoID := chi.URLParam(r, "photo_id")

	if err := h.Albums.DeletePhoto(r.Context(), albumID, photoID); err != nil {
		h.log.InternalError("photos.delete: delete failed", err, "album_id", albumID, "photo_id", photoID)
		writeInternalError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListPages(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "album_id")

	pages, err := h.Albums.ListPages(r.Context(), albumID)
	if err != nil {
		h.log.InternalError("pages.list: query failed", err, "album_id", albumID)
		writeInternalError(w, err)
		return
	}

	response := make([]pageResponse, 0, len(pages))
	for _, page := range pages {
		response = append(response, pageResponse{
			PageNumber: page.PageNumber,
			Content:    page.Content,
		})
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) UpsertPage(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "album_id")

	pageNumber, err := parseIntParam(chi.URLParam(r, "page_number"), 0)
	if err != nil || pageNumber < 1 {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid page_number")
		return
	}

	var req upsertPageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	h.upsertPage(w, r, albumID, pageNumber, req.Content)
}

func (h *Handlers) UpsertPageByBody(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "album_id")

	var req upsertPageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.PageNumber == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing page_number")
		return
	}

	h.upsertPage(w, r, albumID, *req.PageNumber, req.Content)
}

func (h *Handlers) upsertPage(w http.ResponseWriter, r *http.Request, albumID string, pageNumber int, content string) {
	if err := h.Albums.UpsertPage(r.Context(), albumID, pageNumber, content); err != nil {
		h.log.InternalError("pages.upsert: upsert failed", err, "album_id", albumID, "page_number", pageNumber)
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
