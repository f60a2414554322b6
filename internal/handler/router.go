package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/adarsh8081/e-waste-management/internal/handler/chat"
	classifierHandler "github.com/adarsh8081/e-waste-management/internal/handler/classifier"
	historyHandler "github.com/adarsh8081/e-waste-management/internal/handler/history"
	speechHandler "github.com/adarsh8081/e-waste-management/internal/handler/speech"
	middlewarePkg "github.com/adarsh8081/e-waste-management/internal/middleware"
	historyService "github.com/adarsh8081/e-waste-management/internal/service/history"
	"github.com/adarsh8081/e-waste-management/internal/service/language"
	speechService "github.com/adarsh8081/e-waste-management/internal/service/speech"
	"github.com/adarsh8081/e-waste-management/internal/supervisor"
)

// NewRouter wires HTTP routes to core services. speechSvc may be nil; the
// voice routes then answer 503.
func NewRouter(sup *supervisor.Supervisor, store *historyService.Store, langSvc *language.Service, speechSvc *speechService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chat := chatHandler.New(sup, store, langSvc, speechSvc)
	chats := historyHandler.New(store)
	classifier := classifierHandler.New(sup)
	voice := speechHandler.New(speechSvc, langSvc)

	r.Route("/api", func(api chi.Router) {
		chat.RegisterRoutes(api)
		chats.RegisterRoutes(api)
		classifier.RegisterRoutes(api)
		voice.RegisterRoutes(api)
	})

	return r
}
