// Package speech exposes the voice side-channel over a websocket: clients
// send text to be spoken or audio to be transcribed, the server answers with
// audio frames or transcripts. Everything here is best-effort and never
// touches the session store.
package speech

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/adarsh8081/e-waste-management/internal/service/language"
	"github.com/adarsh8081/e-waste-management/internal/service/speech"
	"github.com/adarsh8081/e-waste-management/pkg/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The API is already CORS-open; the websocket follows the same policy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientMessage is what the browser sends over the socket.
type clientMessage struct {
	Type     string `json:"type"` // "speak" or "recognize"
	Text     string `json:"text,omitempty"`
	Audio    string `json:"audio,omitempty"` // base64
	Format   string `json:"format,omitempty"`
	Language string `json:"language,omitempty"`
}

// serverMessage is the JSON frame sent back for transcripts and errors;
// synthesized audio goes out as binary frames.
type serverMessage struct {
	Type  string `json:"type"` // "transcript" or "error"
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

// Handler serves the voice websocket.
type Handler struct {
	speech *speech.Service
	lang   *language.Service
}

// New builds the speech handler.
func New(speechSvc *speech.Service, langSvc *language.Service) *Handler {
	return &Handler{speech: speechSvc, lang: langSvc}
}

// RegisterRoutes mounts the websocket route on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/speech/ws", h.handleWS)
}

func (h *Handler) handleWS(w http.ResponseWriter, r *http.Request) {
	if h.speech == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "Speech service is not available")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[speech] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[speech] websocket read failed: %v", err)
			}
			return
		}

		langCode := msg.Language
		if langCode == "" {
			langCode = h.lang.Preference().Code
		}

		switch msg.Type {
		case "speak":
			audio, err := h.speech.Synthesize(ctx, msg.Text, langCode)
			if err != nil {
				h.writeError(conn, "synthesis failed")
				continue
			}
			if err := conn.WriteMessage(websocket.BinaryMessage, audio); err != nil {
				log.Printf("[speech] websocket write failed: %v", err)
				return
			}

		case "recognize":
			audio, err := base64.StdEncoding.DecodeString(msg.Audio)
			if err != nil {
				h.writeError(conn, "invalid audio encoding")
				continue
			}
			text, err := h.speech.Recognize(ctx, audio, msg.Format, langCode)
			if err != nil {
				h.writeError(conn, "recognition failed")
				continue
			}
			if err := conn.WriteJSON(serverMessage{Type: "transcript", Text: text}); err != nil {
				log.Printf("[speech] websocket write failed: %v", err)
				return
			}

		default:
			h.writeError(conn, "unknown message type")
		}
	}
}

func (h *Handler) writeError(conn *websocket.Conn, message string) {
	payload, _ := json.Marshal(serverMessage{Type: "error", Error: message})
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		log.Printf("[speech] websocket write failed: %v", err)
	}
}
