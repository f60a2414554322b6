// Package history serves the session CRUD surface over the store.
package history

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/adarsh8081/e-waste-management/internal/model/chat"
	"github.com/adarsh8081/e-waste-management/internal/service/history"
	"github.com/adarsh8081/e-waste-management/pkg/utils"
)

// Handler translates HTTP to store operations one-to-one.
type Handler struct {
	store *history.Store
}

// New builds the history handler.
func New(store *history.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the session CRUD routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/chats", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{chatID}", h.handleGet)
		r.Post("/{chatID}/rename", h.handleRename)
		r.Delete("/{chatID}", h.handleDelete)
		r.Get("/{chatID}/share", h.handleShare)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"chats":   h.store.ListSessions(),
		"success": true,
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	// Body is optional; an unnamed chat gets the default name.
	_ = json.NewDecoder(r.Body).Decode(&payload)

	session, err := h.store.CreateSession(strings.TrimSpace(payload.Name))
	if err != nil {
		log.Printf("[history] create session failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create chat")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"chat":    session,
		"success": true,
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	session, ok := h.store.GetSession(chi.URLParam(r, "chatID"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "Chat not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"chat":    session,
		"success": true,
	})
}

func (h *Handler) handleRename(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		utils.RespondError(w, http.StatusBadRequest, "New name not provided")
		return
	}

	ok, err := h.store.RenameSession(chi.URLParam(r, "chatID"), payload.Name)
	if err != nil {
		log.Printf("[history] rename failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to rename chat")
		return
	}
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "Chat not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Chat renamed successfully",
		"success": true,
	})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.store.DeleteSession(chi.URLParam(r, "chatID"))
	if err != nil {
		log.Printf("[history] delete failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete chat")
		return
	}
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "Chat not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Chat deleted successfully",
		"success": true,
	})
}

// handleShare returns the read-only export of a chat: name, creation time
// and transcript, nothing mutable.
func (h *Handler) handleShare(w http.ResponseWriter, r *http.Request) {
	session, ok := h.store.GetSession(chi.URLParam(r, "chatID"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "Chat not found")
		return
	}

	shared := struct {
		Name      string         `json:"name"`
		CreatedAt time.Time      `json:"created_at"`
		Messages  []chat.Message `json:"messages"`
	}{
		Name:      session.Name,
		CreatedAt: session.CreatedAt,
		Messages:  session.Messages,
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"chat":    shared,
		"success": true,
	})
}
