package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/julienschmidt/httprouter"

	"resortly/pkg/config"
	"resortly/pkg/contracts"
	"resortly/pkg/middleware"
)

// Application owns the HTTP server lifecycle: route registration, the
// middleware chain and graceful shutdown on SIGINT/SIGTERM.
type Application struct {
	cfg        *config.Config
	server     *http.Server
	onShutdown []func()
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// OnShutdown registers a cleanup hook run after the server drains,
// in registration order. Used for the store connection and the event
// publisher.
func (a *Application) OnShutdown(fn func()) {
	a.onShutdown = append(a.onShutdown, fn)
}

// SetHandlers builds one router for the whole API surface. Liveness and
// readiness endpoints sit on the same router; their handlers do no
// body decoding so the full middleware chain is harmless there.
func (a *Application) SetHandlers(handlers ...contracts.Handler) {
	router := httprouter.New()
	for _, h := range handlers {
		h.RegisterRoutes(router)
	}

	var chained http.Handler = router
	chained = middleware.ContentTypeValidation(a.cfg.Log)(chained)
	chained = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(chained)
	chained = middleware.RequestTimeout(a.cfg.RequestTimeout)(chained)
	chained = middleware.RequestLogging(a.cfg.Log)(chained)
	chained = middleware.Recovery(a.cfg.Log)(chained)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      chained,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Error("Could not stop server", "error", err)
		}
	}

	for _, fn := range a.onShutdown {
		fn()
	}

	a.cfg.Log.Info("Server stopped gracefully")
}
