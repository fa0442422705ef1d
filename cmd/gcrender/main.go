// Command gcrender renders a TOML scene file to an image.
//
// Usage:
//
//	gcrender [-o out.png] [-format png|bmp|jpeg] [-watch] scene.toml
//
// Defaults come from GCANVAS_OUTPUT, GCANVAS_FORMAT, GCANVAS_LOG_LEVEL,
// GCANVAS_WIDTH and GCANVAS_HEIGHT; flags override them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/gogpu/gcanvas"
	"github.com/gogpu/gcanvas/internal/config"
	"github.com/gogpu/gcanvas/internal/scene"
)

const (
	jpegQuality = 95

	// bitmapCacheSize bounds the decoded images kept between -watch renders.
	bitmapCacheSize = 64
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		slog.Error("gcrender failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	fs := flag.NewFlagSet("gcrender", flag.ContinueOnError)
	fs.StringVar(&cfg.Output, "o", cfg.Output, "output image file")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: png, bmp or jpeg (default: from -o extension)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "override the scene width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "override the scene height")
	watch := fs.Bool("watch", false, "re-render whenever the scene file changes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected one scene file, got %d arguments", fs.NArg())
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gcanvas.SetLogger(logger)

	path := fs.Arg(0)
	bitmaps := scene.NewBitmapCache(bitmapCacheSize)
	if err := render(path, cfg, bitmaps); err != nil {
		if !*watch {
			return err
		}
		logger.Error("render failed", "scene", path, "err", err)
	}
	if !*watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchScene(ctx, path, func() {
		if err := render(path, cfg, bitmaps); err != nil {
			logger.Error("render failed", "scene", path, "err", err)
		}
	})
}

// render loads the scene at path, draws it and writes the image.
func render(path string, cfg *config.Config, bitmaps *scene.BitmapCache) error {
	s, err := scene.Load(path)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	if cfg.Width > 0 {
		s.Width = cfg.Width
	}
	if cfg.Height > 0 {
		s.Height = cfg.Height
	}

	bm, err := s.Render(bitmaps)
	if err != nil {
		return fmt.Errorf("render scene: %w", err)
	}

	enc, err := encoder(cfg)
	if err != nil {
		return err
	}
	if err := imgio.Save(cfg.Output, bm.ToImage(), enc); err != nil {
		return fmt.Errorf("save %s: %w", cfg.Output, err)
	}
	slog.Info("rendered", "scene", path, "output", cfg.Output, "width", bm.Width, "height", bm.Height)
	return nil
}

func encoder(cfg *config.Config) (imgio.Encoder, error) {
	format, err := cfg.ResolveFormat()
	if err != nil {
		return nil, err
	}
	switch format {
	case config.FormatBMP:
		return imgio.BMPEncoder(), nil
	case config.FormatJPEG:
		return imgio.JPEGEncoder(jpegQuality), nil
	default:
		return imgio.PNGEncoder(), nil
	}
}
