// Package chat exposes the conversational endpoint plus the readiness and
// language surfaces around it.
package chat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	chatModel "github.com/adarsh8081/e-waste-management/internal/model/chat"
	"github.com/adarsh8081/e-waste-management/internal/model/lang"
	"github.com/adarsh8081/e-waste-management/internal/service/history"
	"github.com/adarsh8081/e-waste-management/internal/service/language"
	"github.com/adarsh8081/e-waste-management/internal/service/speech"
	"github.com/adarsh8081/e-waste-management/internal/supervisor"
	"github.com/adarsh8081/e-waste-management/pkg/utils"
)

// stillInitializing is the status/chat gate message shown until the
// supervisor reports Ready.
const stillInitializing = "Components are still initializing..."

// Handler serves /chat, /status and /languages.
type Handler struct {
	sup    *supervisor.Supervisor
	store  *history.Store
	lang   *language.Service
	speech *speech.Service
}

// New builds the chat handler. speechSvc may be nil.
func New(sup *supervisor.Supervisor, store *history.Store, langSvc *language.Service, speechSvc *speech.Service) *Handler {
	return &Handler{
		sup:    sup,
		store:  store,
		lang:   langSvc,
		speech: speechSvc,
	}
}

// RegisterRoutes mounts the handler's routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/status", h.handleStatus)
	r.Get("/languages", h.handleGetLanguages)
	r.Post("/languages", h.handleSetLanguage)
}

// gate rejects traffic until initialization completed. The 503 is retryable;
// nothing is silently degraded before Ready.
func (h *Handler) gate(w http.ResponseWriter) *supervisor.Components {
	status := h.sup.Status()
	switch status.State {
	case supervisor.Ready:
		return h.sup.Components()
	case supervisor.Failed:
		utils.RespondError(w, http.StatusServiceUnavailable, "Initialization failed: "+status.Reason)
		return nil
	default:
		utils.RespondError(w, http.StatusServiceUnavailable, stillInitializing)
		return nil
	}
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	comps := h.gate(w)
	if comps == nil {
		return
	}

	var payload struct {
		ChatID  string `json:"chat_id"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "Message cannot be empty")
		return
	}

	ctx := r.Context()
	pref := h.lang.Preference()

	// The primary model is prompted in English; translate foreign input
	// first (fail-open, the original text survives any provider trouble).
	query := payload.Message
	if h.lang.DetectLanguage(query) != lang.Default {
		query = h.lang.Translate(ctx, query, lang.Default)
	}

	response := comps.Orchestrator.GenerateResponse(ctx, query)

	switch response.Kind {
	case chatModel.ResponseText:
		answer := response.Text
		if pref.Code != lang.Default {
			answer = h.lang.Translate(ctx, answer, pref.Code)
		}

		chatID, err := h.store.AddMessage(payload.ChatID, payload.Message, answer)
		if err != nil {
			log.Printf("[chat] failed to persist message: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Failed to save chat history")
			return
		}

		if pref.AudioEnabled {
			h.speakAsync(answer, pref.Code)
		}

		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"response": answer,
			"chat_id":  chatID,
			"success":  true,
		})

	case chatModel.ResponseImages:
		// Image replies come from the classification surface, not the
		// transcript; they are returned without a history append.
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"type":    "image_response",
			"images":  response.Images,
			"chat_id": payload.ChatID,
			"success": true,
		})

	default:
		utils.RespondError(w, http.StatusInternalServerError, "Invalid response from chatbot")
	}
}

// speakAsync synthesizes the reply off the request path. Best-effort: audio
// trouble never affects the chat response, and no store locks are held here.
func (h *Handler) speakAsync(text, langCode string) {
	if h.speech == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := h.speech.Synthesize(ctx, text, langCode); err != nil {
			log.Printf("[chat] audio synthesis failed: %v", err)
		}
	}()
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := h.sup.Status()

	var errMsg interface{}
	initialized := false
	switch status.State {
	case supervisor.Ready:
		initialized = true
	case supervisor.Failed:
		errMsg = "Initialization failed: " + status.Reason
	default:
		errMsg = stillInitializing
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"initialized": initialized,
		"error":       errMsg,
		"success":     true,
	})
}

func (h *Handler) handleGetLanguages(w http.ResponseWriter, r *http.Request) {
	pref := h.lang.Preference()
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"languages":        lang.Supported(),
		"current_language": pref.Code,
		"success":          true,
	})
}

func (h *Handler) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Language string `json:"language"`
		Audio    *bool  `json:"audio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if payload.Language != "" {
		if err := h.lang.SetLanguage(payload.Language); err != nil {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if payload.Audio != nil {
		h.lang.SetAudio(*payload.Audio)
	}

	pref := h.lang.Preference()
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"current_language": pref.Code,
		"audio_enabled":    pref.AudioEnabled,
		"success":          true,
	})
}
