package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/config"
	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/handlers"
	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/registry"
	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := store.NewStore(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate("migrations"); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"
	if cfg.CookieDomain != "" {
		sessionStore.Options.Domain = cfg.CookieDomain
	}

	templates := handlers.NewTemplateCache()
	if err := templates.Load("templates"); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	svc := registry.New(db)

	homeHandler := &handlers.HomeHandler{
		Store:        db,
		Registry:     svc,
		SessionStore: sessionStore,
		Templates:    templates,
		BaseURL:      cfg.BaseURL,
	}
	adminHandler := &handlers.AdminHandler{
		Store:        db,
		Registry:     svc,
		SessionStore: sessionStore,
		Templates:    templates,
		UploadsDir:   cfg.UploadsDir,
	}

	mux := http.NewServeMux()

	// Static files (CSS plus uploaded couple photos)
	fileServer := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// Throttle guest submissions
	rateLimiter := handlers.NewRateLimiter(10 * time.Second)

	// Public routes
	mux.HandleFunc("/", homeHandler.Index)
	mux.HandleFunc("GET /reserve", homeHandler.ReserveForm)
	mux.HandleFunc("POST /reserve", rateLimiter.Middleware(homeHandler.Reserve))
	mux.HandleFunc("GET /thanks", homeHandler.Thanks)

	// Session routes
	mux.HandleFunc("GET /login", adminHandler.LoginGet)
	mux.HandleFunc("POST /login", adminHandler.LoginPost)
	mux.HandleFunc("POST /signup", adminHandler.SignupPost)
	mux.HandleFunc("GET /logout", adminHandler.Logout)

	// Protected routes
	mux.HandleFunc("GET /admin", adminHandler.AuthMiddleware(adminHandler.Panel))
	mux.HandleFunc("GET /admin/report", adminHandler.AuthMiddleware(adminHandler.Report))
	mux.HandleFunc("GET /admin/gifts/new", adminHandler.AuthMiddleware(adminHandler.NewGiftForm))
	mux.HandleFunc("POST /admin/gifts", adminHandler.AuthMiddleware(adminHandler.CreateGift))
	mux.HandleFunc("GET /admin/gifts/edit", adminHandler.AuthMiddleware(adminHandler.EditGiftForm))
	mux.HandleFunc("POST /admin/gifts/update", adminHandler.AuthMiddleware(adminHandler.UpdateGift))
	mux.HandleFunc("POST /admin/gifts/delete", adminHandler.AuthMiddleware(adminHandler.DeleteGift))
	mux.HandleFunc("POST /admin/gifts/reset", adminHandler.AuthMiddleware(adminHandler.ResetGift))
	mux.HandleFunc("POST /admin/photo", adminHandler.AuthMiddleware(adminHandler.UploadCouplePhoto))

	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure),
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port, "localhost", "127.0.0.1"}),
	)

	// Chain: Logger -> Security Headers -> CSRF -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(
			CSRF(mux),
		),
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
