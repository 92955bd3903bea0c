package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"namewheel/internal/config"
	"namewheel/internal/entries"
	"namewheel/internal/logger"
	"namewheel/internal/render"
	"namewheel/internal/schema"
	"namewheel/internal/store"
	"namewheel/internal/tui"
	"namewheel/internal/wheel"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Log.Dir); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()
	logger.Debug("Starting namewheel...")

	// Parse command line arguments
	args := os.Args[1:]
	cmd := ""
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "schema":
		// No storage needed
		err = runSchema()
	case "pick", "render", "":
		err = withStore(cfg, func(kv store.KV) error {
			switch cmd {
			case "pick":
				return runPick(cfg, kv, args)
			case "render":
				return runRender(kv, args)
			}
			// Interactive TUI mode: namewheel
			return tui.RunTUI(tui.Load(context.Background(), kv), cfg)
		})
	default:
		err = fmt.Errorf("unknown command %q (want pick, render or schema)", cmd)
	}

	if err != nil {
		logger.Error("%s: %v", commandName(cmd), err)
		log.Printf("Error: %s\n", err.Error())
		logger.Close()
		os.Exit(1)
	}
}

func commandName(cmd string) string {
	if cmd == "" {
		return "tui"
	}
	return cmd
}

func withStore(cfg config.Config, fn func(store.KV) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	kv, err := store.Open(ctx, cfg.Store.Path)
	if err != nil {
		return err
	}
	defer kv.Close()
	return fn(kv)
}

// runPick spins headlessly and prints the winner. Names come from the
// arguments, then piped stdin, then the saved wheel.
func runPick(cfg config.Config, kv store.KV, args []string) error {
	var names []string
	switch {
	case len(args) > 0:
		names = args
	case stdinPiped():
		parsed, err := entries.Parse(os.Stdin)
		if err != nil {
			return err
		}
		names = parsed
	default:
		saved, err := store.LoadEntries(context.Background(), kv)
		if err != nil {
			logger.Error("Using default entries: %v", err)
		}
		names = saved
	}

	list := entries.New(names)
	c := wheel.NewController(list,
		wheel.WithDuration(cfg.Spin.Duration),
		wheel.WithFullTurns(cfg.Spin.FullTurns),
		wheel.WithEasingPower(cfg.Spin.EasingPower),
		wheel.WithLogger(logger.Debug),
	)
	id, ok := c.StartSpin(time.Now())
	if !ok {
		return fmt.Errorf("need at least two names to spin, got %d", list.Len())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w, err := c.Run(ctx, id, cfg.Frame.Interval)
	if err != nil {
		return fmt.Errorf("spin interrupted: %w", err)
	}
	logger.Event("winner", map[string]interface{}{
		"session": w.Session.String(),
		"index":   w.Index,
		"entry":   w.Entry,
	})
	fmt.Println(w.Entry)
	return nil
}

func stdinPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

func runRender(kv store.KV, args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	out := fs.String("o", "wheel.png", "output PNG path")
	angle := fs.Float64("angle", 0, "disc rotation in radians")
	size := fs.Int("size", render.DefaultOptions().Size, "image width and height in pixels")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	names, err := store.LoadEntries(ctx, kv)
	if err != nil {
		logger.Error("Using default entries: %v", err)
	}
	settings, err := store.LoadSettings(ctx, kv)
	if err != nil {
		logger.Error("Using default settings: %v", err)
	}

	opts := render.DefaultOptions()
	opts.Size = *size
	opts.DarkMode = settings.DarkMode

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", *out, err)
	}
	if err := render.PNG(f, wheel.Layout(names), *angle, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}

	fmt.Printf("Wrote %s (%d entries: %s)\n", *out, len(names), strings.Join(names, ", "))
	return nil
}

func runSchema() error {
	data, err := schema.Document[store.Settings]("namewheel settings")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
