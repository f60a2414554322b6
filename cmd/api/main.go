package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/adarsh8081/e-waste-management/internal/config"
	"github.com/adarsh8081/e-waste-management/internal/handler"
	"github.com/adarsh8081/e-waste-management/internal/service/ai"
	"github.com/adarsh8081/e-waste-management/internal/service/classify"
	"github.com/adarsh8081/e-waste-management/internal/service/fallback"
	"github.com/adarsh8081/e-waste-management/internal/service/history"
	"github.com/adarsh8081/e-waste-management/internal/service/language"
	"github.com/adarsh8081/e-waste-management/internal/service/orchestrator"
	"github.com/adarsh8081/e-waste-management/internal/service/speech"
	"github.com/adarsh8081/e-waste-management/internal/supervisor"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	store, err := history.NewStore(cfg.Store.HistoryFile)
	if err != nil {
		log.Fatalf("failed to open chat history: %v", err)
	}

	var translator language.Provider
	if p := language.NewHTTPProvider(cfg.Translate); p != nil {
		translator = p
	}
	langSvc := language.NewService(translator)

	speechSvc := speech.NewService(cfg.Speech)
	if speechSvc != nil {
		log.Println("Speech service initialized successfully")
	} else {
		log.Println("Speech endpoints not configured, voice features disabled")
	}

	// Heavy subsystems come up in the background; the readiness gate holds
	// traffic until they finish.
	sup := supervisor.New(buildComponents(cfg))
	sup.Start(ctx)

	router := handler.NewRouter(sup, store, langSvc, speechSvc)
	startServer(ctx, cfg.Server, router)
}

// buildComponents returns the supervised initialization: warm the generative
// client (degrading silently to the fallback engine when it cannot come up)
// and ping the classifier when one is configured.
func buildComponents(cfg *config.Config) supervisor.InitFunc {
	return func(ctx context.Context) (*supervisor.Components, error) {
		var asker orchestrator.Asker

		if cfg.AI.Enabled() {
			log.Println("Initializing primary model client...")
			client, err := ai.NewClient(ctx, cfg.AI)
			if err != nil {
				log.Printf("warning: primary model init failed: %v", err)
				log.Println("falling back to the deterministic response system")
			} else if err := client.Handshake(ctx, cfg.AI.HandshakeTimeout); err != nil {
				log.Printf("warning: primary model handshake failed: %v", err)
				log.Println("falling back to the deterministic response system")
			} else {
				log.Println("Primary model client initialized successfully")
				asker = client
			}
		} else {
			log.Println("Ark credentials not configured, running on the deterministic response system")
		}

		var clf classify.Classifier
		if remote := classify.NewRemote(cfg.Classifier); remote != nil {
			log.Println("Warming image classifier...")
			if _, err := remote.DatasetInfo(ctx); err != nil {
				return nil, err
			}
			clf = remote
		} else {
			log.Println("Classifier endpoint not configured, image analysis disabled")
		}

		return &supervisor.Components{
			Orchestrator: orchestrator.New(asker, fallback.NewEngine()),
			Classifier:   clf,
		}, nil
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("E-Waste assistant backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
