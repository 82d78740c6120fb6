// Package main is the entry point for the vectra terminal demo.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vectra-editor/vectra/internal/app"
	"github.com/vectra-editor/vectra/internal/scene"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var opts app.Options
	var showVersion bool
	flag.StringVar(&opts.ConfigPath, "config", "", "Path to settings file")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("vectra %s (%s)\n", version, commit)
		return 0
	}

	a, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	seedDocument(a)

	host, err := app.NewHost(a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		host.Close()
	}()

	if err := host.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// seedDocument adds a starter path so there is something to interact
// with.
func seedDocument(a *app.App) {
	d := "M10,15 C20,5,30,5,40,15 C50,25,60,25,70,15"
	if _, err := a.Store.AddPathData("demo", d, scene.Style{Stroke: "#4477aa", StrokeWidth: 1}); err != nil {
		a.Log.Error("seed document: %v", err)
	}
	a.Store.PushToHistory()
}
