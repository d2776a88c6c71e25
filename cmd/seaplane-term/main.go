package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"seaplane/internal/app"
	"seaplane/internal/core"
	"seaplane/internal/sims/flight"
	"seaplane/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "seaplane-term.log", "log file; the terminal owns stdout")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	sim := flight.New(cfg.FlightConfig())
	session := app.NewSession(sim, cfg.LaunchOptions(), cfg.Gate(), core.Size{W: cfg.Width, H: cfg.Height})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := term.New(screen, sim, session).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("term: %v", err)
	}
}
