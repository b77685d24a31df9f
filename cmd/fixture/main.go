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

	"ui-verifier/internal/fixture"
	"ui-verifier/internal/infrastructure/env"
)

func main() {
	envService := env.NewEnvService()

	variant, err := fixture.ParseVariant(envService.Get("FIXTURE_VARIANT"))
	if err != nil {
		log.Fatal(err)
	}

	opts := fixture.DefaultOptions()
	opts.Variant = variant
	opts.RenderDelayMS = envService.GetInt("FIXTURE_RENDER_DELAY_MS", opts.RenderDelayMS)
	opts.RequestLog = envService.GetBool("FIXTURE_REQUEST_LOG", true)

	handler, err := fixture.NewRouter(opts)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:              envService.GetWithDefault("FIXTURE_ADDR", ":3000"),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("fixture app (%s) listening on %s%s", variant, srv.Addr, fixture.BasePath)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
