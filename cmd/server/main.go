package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ringpong/config"
	"ringpong/network"
	"ringpong/room"
	"ringpong/store"
)

func main() {
	config.Init()
	addr := config.Get("RINGPONG_ADDR", ":8080")
	dbPath := config.Get("RINGPONG_DB", "ringpong.db")

	scores, err := store.Open(dbPath)
	if err != nil {
		slog.Error("open high score store", "path", dbPath, "err", err)
		os.Exit(1)
	}
	defer scores.Close()

	manager := room.NewManager(scores)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/api/rooms", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"code": manager.CreateRoom()})
	})
	r.Get("/api/rooms", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, manager.ListRooms())
	})
	r.Get("/ws", network.Handler(manager))

	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		slog.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("serve", "err", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("write response", "err", err)
	}
}
