package main

import (
	"context"
	"log"
	ossignal "os/signal"
	"syscall"

	"headline-lens/internal/config"
	"headline-lens/internal/mcpserver"
	"headline-lens/internal/newsintel"
	"headline-lens/pkg/tracing"

	"github.com/joho/godotenv"
)

const serverVersion = "1.0.0"

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	initTracerFunc = tracing.InitTracer
	runServerFunc  = func(ctx context.Context, s *mcpserver.Server) error {
		return s.Run(ctx, serverVersion)
	}
)

func main() {
	loadEnvFunc()
	loadConfigFunc()

	ctx, stop := ossignal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	annotator := newsintel.NewService(tracer)
	srv := mcpserver.NewServer(annotator)

	log.Println("MCP server serving on stdio")
	if err := runServerFunc(ctx, srv); err != nil && ctx.Err() == nil {
		log.Fatalf("MCP server error: %v", err)
	}
	log.Println("MCP server exited")
}
