package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"mist-provisioning-be/internal/bootstrap"
	"mist-provisioning-be/internal/config"
	"mist-provisioning-be/internal/server"
	"mist-provisioning-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Close()

	// 3. Tracing
	shutdownTracer := tracer.InitTracer(cfg.Tracing, container.Logger)
	defer shutdownTracer(context.Background())

	// 4. Start Background Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := container.AuditConsumer.Consume(ctx); err != nil {
		container.Logger.Error("BOOT", "Audit consumer failed to start", map[string]interface{}{"error": err.Error()})
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		container.Logger.Info("BOOT", "Shutting down", nil)
		_ = srv.Shutdown()
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		container.Logger.Error("BOOT", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
