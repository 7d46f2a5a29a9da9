// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

// Package main is the menupick command-line client.
//
// menupick drives the recommendation backend the same way the app screens
// do: it builds the transport, domain services, login manager, places
// client and interaction pipeline, runs the background services under a
// supervisor tree, and prints the resulting view state as JSON.
//
// # Usage
//
//	menupick [-session id] <command> [flags]
//
// Commands:
//
//	recommend      time-slot recommendation (-slot, -category)
//	collaborative  collaborative-filtering recommendation (-limit, -users)
//	categories     list menu categories
//	questions      list quiz questions, or ask the AI (-ask)
//	favorites      list favorites, or toggle one (-toggle)
//	places         nearby restaurants (-q, -lat, -lng or -address)
//	login-url      print the Kakao authorization URL
//	login          sign in (-code, -cached, or wait for the redirect on -listen)
//	logout         sign out (-keep-cache keeps the Kakao token)
//	status         print the login state (-watch follows changes)
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (API_BASE_URL, KAKAO_CLIENT_ID, KAKAO_REST_API_KEY, ...)
//   - Config file (config.yaml, or MENUPICK_CONFIG_PATH)
//   - Built-in defaults
//
// # Example Usage
//
//	export API_BASE_URL=http://localhost:8000
//	export STORAGE_DRIVER=badger
//	menupick login
//	menupick recommend -slot lunch
//	menupick places -q 냉면 -lat 37.5665 -lng 126.978
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/menupick/internal/config"
	"github.com/tomtom215/menupick/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "menupick: failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(logging.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Caller:     cfg.Logging.Caller,
		Timestamp:  true,
		Categories: cfg.Logging.Categories,
		Output:     os.Stderr,
	})

	if err := run(ctx, os.Args[1:], cfg, logger, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "menupick: %v\n", err)
		os.Exit(1)
	}
}

// run parses the global flags, wires the client and executes one command.
func run(ctx context.Context, args []string, cfg *config.Config, logger *logging.Logger, stdout io.Writer) error {
	global := flag.NewFlagSet("menupick", flag.ContinueOnError)
	global.SetOutput(stdout)
	sessionID := global.String("session", "", "session id to reuse (default: a fresh visit)")
	global.Usage = func() { usage(global) }
	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() == 0 {
		global.Usage()
		return flag.ErrHelp
	}

	name, rest := global.Arg(0), global.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		global.Usage()
		return fmt.Errorf("unknown command %q", name)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stdout)
	exec := cmd.flags(fs)
	if err := fs.Parse(rest); err != nil {
		return err
	}

	// A one-shot process must not exit with interactions still queued.
	cfg.Interaction.BlockUntilDelivered = true

	a, err := newApp(cfg, logger, *sessionID)
	if err != nil {
		return err
	}
	defer a.close()

	a.start(ctx, cmd.watchesLogin)
	return exec(ctx, a, stdout)
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "usage: menupick [-session id] <command> [flags]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "commands:")
	for _, name := range commandOrder {
		fmt.Fprintf(out, "  %-14s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(out)
	fs.PrintDefaults()
}
