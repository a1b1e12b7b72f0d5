package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"queue/internal/shell"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := shell.DefaultConfig()
	if len(os.Args) > 1 {
		loaded, err := shell.LoadConfig(os.Args[1])
		if err != nil {
			log.Fatalf("Loading config %s: %v", os.Args[1], err)
		}
		cfg = loaded
	}

	sh, err := shell.NewShell(cfg)
	if err != nil {
		log.Fatalf("Starting shell: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	if err := sh.Run(ctx, os.Stdin, os.Stdout); err != nil && err != context.Canceled {
		log.Fatalf("Shell failed: %v", err)
	}
}
