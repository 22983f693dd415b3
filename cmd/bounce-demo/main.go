package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/cellforge/config"
	"github.com/lixenwraith/cellforge/engine"
	"github.com/lixenwraith/cellforge/terminal"
)

const logDir = "logs"

var (
	configFlag = flag.String("config", "bounce.toml", "Path to TOML configuration")
	debugFlag  = flag.Bool("debug", false, "Write debug log to "+logDir+"/")
)

// setupLogging routes the stdlib logger to a file when debug is enabled.
// Raw mode owns the tty, so logging to stdout would corrupt frames; by
// default everything is discarded.
func setupLogging(debugEnabled bool) *os.File {
	if !debugEnabled {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	name := filepath.Join(logDir, fmt.Sprintf("bounce-%s.log", time.Now().Format("20060102-150405")))
	f, err := os.Create(name)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	return f
}

func main() {
	// Panic recovery: restore the terminal to a sane state before the
	// stack trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mBOUNCE DEMO CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Name == "cellforge" {
		cfg.Name = "bounce"
	}

	adapter := terminal.New()

	app := newBounceApp(adapter)
	loop, err := engine.NewLoop(cfg.Loop(), app, adapter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create loop: %v\n", err)
		os.Exit(1)
	}
	app.bind(loop)

	if err := loop.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}
