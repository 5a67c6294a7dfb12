package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studentdash/internal/app/server/api"
	"studentdash/internal/app/server/config"
	"studentdash/internal/infrastructure/storage"
	"studentdash/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.New(ctx, conf, log)
	if err != nil {
		log.Error("Не удалось открыть хранилище", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Ошибка закрытия хранилища", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:         conf.Server.RunAddress,
		Handler:      api.New(store, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Сервер запущен", "address", conf.Server.RunAddress, "storage", conf.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Ошибка сервера", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Остановка сервера...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Принудительная остановка сервера", "error", err)
	}
}
