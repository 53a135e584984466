package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/xKoRx/gridmarket/cmd/gridwatch/internal"
)

const version = "0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "Imprimir la versión y salir")
	flag.Parse()

	if *showVersion {
		fmt.Printf("gridwatch %s\n", version)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	watcher, err := internal.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error inicializando gridwatch: %v\n", err)
		os.Exit(1)
	}

	if err := watcher.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "error ejecutando gridwatch: %v\n", err)
		_ = watcher.Shutdown()
		os.Exit(1)
	}

	if err := watcher.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "error cerrando gridwatch: %v\n", err)
		os.Exit(1)
	}
}
