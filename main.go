// Command scandeck starts the scan execution API server.
// Usage: go run . [flags]
// Default listen address: :8080
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

	"github.com/volkh4n/scandeck/internal/app"
	"github.com/volkh4n/scandeck/internal/cli"
	"github.com/volkh4n/scandeck/internal/server"
)

func main() {
	args, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	cfg := app.DefaultConfig()
	if args.ProcessTimeout > 0 {
		cfg.ExecutorCfg.Timeout = args.ProcessTimeout
	}
	if args.OutputCap > 0 {
		cfg.ExecutorCfg.OutputCap = args.OutputCap
	}
	if args.EventBuffer > 0 {
		cfg.EventBuffer = args.EventBuffer
	}
	cfg.SubmitRate = args.SubmitRate
	cfg.SubmitBurst = args.SubmitBurst

	srv, err := server.NewServer(server.Config{
		ListenAddr: args.Addr,
		AppConfig:  cfg,
	})
	if err != nil {
		log.Fatalf("Server setup failed: %v", err)
	}

	httpSrv := srv.HTTPServer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("scandeck listening on %s", args.Addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		// Stop accepting requests, then let in-flight handlers drain.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}

	srv.Close()
}
