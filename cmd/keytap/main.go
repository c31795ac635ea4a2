// Package main is a small key monitor demonstrating the keytap library.
// It prints key transitions from the chosen surface and exits on Escape.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/dshills/keytap/bindings"
	"github.com/dshills/keytap/input"
	"github.com/dshills/keytap/key"
	"github.com/dshills/keytap/luabind"
	evdevsurface "github.com/dshills/keytap/surface/evdev"
	"github.com/dshills/keytap/surface/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		devicePath   = flag.String("device", "", "read from an evdev device node instead of the terminal")
		bindingsPath = flag.String("bindings", "", "TOML bindings file to load and watch")
		scriptPath   = flag.String("script", "", "Lua script registering key handlers")
		verbose      = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	logLevel := zerolog.WarnLevel
	if *verbose {
		logLevel = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(logLevel).
		With().Timestamp().Logger()

	surface, cleanup, err := openSurface(*devicePath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer cleanup()

	reg := input.NewRegistry(input.WithSurface(surface), input.WithLogger(log))
	if err := reg.Subscribe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: subscribe: %v\n", err)
		return 1
	}
	defer func() { _ = reg.Unsubscribe() }()

	quit := make(chan struct{})
	reg.AddListener(func() { close(quit) }, key.Escape, input.NotifyPress)

	watchKeys(reg, log)

	if *bindingsPath != "" {
		binder := bindings.NewBinder(reg, func(action string) {
			log.Info().Str("action", action).Msg("action")
		}, bindings.WithBinderLogger(log))

		watcher, err := bindings.Watch(*bindingsPath, binder, bindings.WithWatcherLogger(log))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bindings: %v\n", err)
			return 1
		}
		defer watcher.Close()
	}

	if *scriptPath != "" {
		bridge := luabind.New(reg, luabind.WithLogger(log))
		defer bridge.Close()
		if err := bridge.DoFile(*scriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: script: %v\n", err)
			return 1
		}
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case <-signals:
	}
	return 0
}

// openSurface picks the evdev device when given, the terminal otherwise.
func openSurface(devicePath string, log zerolog.Logger) (input.Surface, func(), error) {
	if devicePath != "" {
		s, err := evdevsurface.Open(devicePath, evdevsurface.WithLogger(log))
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	}

	s, err := terminal.New(terminal.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	if err := s.Start(); err != nil {
		return nil, nil, err
	}
	return s, s.Stop, nil
}

// watchKeys logs transitions for every key in the static table.
func watchKeys(reg *input.Registry, log zerolog.Logger) {
	for name, code := range key.Codes() {
		name, code := name, code
		reg.AddListener(func() {
			log.Info().Str("key", name).Msg("pressed")
		}, code, input.NotifyPress)
		reg.AddListener(func() {
			log.Info().Str("key", name).Msg("released")
		}, code, input.NotifyRelease)
	}
}
