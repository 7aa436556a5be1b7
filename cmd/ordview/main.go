package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"ordview/internal/config"
	"ordview/internal/decomp"
	"ordview/internal/geom"
	"ordview/internal/telemetry"
	"ordview/internal/ui"
)

// DebugEnv enables the debug log without the -debug flag.
const DebugEnv = "ORDVIEW_DEBUG"

// flags holds the parsed CLI configuration.
type flags struct {
	configPath string
	views      int
	fps        int
	debug      bool
}

func parseFlags() flags {
	var f flags

	flag.StringVar(&f.configPath, "config", "", "path to config.yaml (default $ORDVIEW_CONFIG or ~/.config/ordview/config.yaml)")
	flag.IntVar(&f.views, "views", 0, fmt.Sprintf("number of scene views to open, 1-%d (overrides config)", geom.MaxViews))
	flag.IntVar(&f.fps, "fps", 0, "frame rate (overrides config)")
	flag.BoolVar(&f.debug, "debug", os.Getenv(DebugEnv) == "1", "write a debug log to ordview-debug.log")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ordview [flags]\n\n")
		fmt.Fprintf(os.Stderr, "ordview shows ordination results as 3D scatter plots in one or more\n")
		fmt.Fprintf(os.Stderr, "side-by-side views, with color, visibility and shape tabs.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if f.views < 0 || f.views > geom.MaxViews {
		fmt.Fprintf(os.Stderr, "error: --views must be between 1 and %d\n", geom.MaxViews)
		flag.Usage()
		os.Exit(1)
	}
	return f
}

func loadConfig(f flags) (config.File, error) {
	path := f.configPath
	if path == "" {
		var err error
		if path, err = config.ResolvePath(); err != nil {
			return config.File{}, err
		}
	}
	file, err := config.Load(path)
	if err != nil {
		return config.File{}, err
	}
	if f.views > 0 {
		file.Views = f.views
	}
	if f.fps > 0 {
		file.Layout.FPS = f.fps
	}
	return file, nil
}

func run(f flags) error {
	if f.debug {
		logFile, err := tea.LogToFile("ordview-debug.log", "ordview")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	file, err := loadConfig(f)
	if err != nil {
		return err
	}
	cfg, err := file.UIConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctrl, err := ui.NewController(cfg, decomp.Demo())
	if err != nil {
		return err
	}
	for i := 1; i < file.Views; i++ {
		if err := ctrl.AddView(); err != nil {
			return err
		}
	}
	if err := ctrl.RegisterDefaultTabs(); err != nil {
		return err
	}
	log.Printf("ordview: %d views, menu width %d, frame %v", len(ctrl.Views()), cfg.MenuWidth, cfg.FrameInterval)

	p := tea.NewProgram(ui.NewApp(ctrl).AsTeaModel(), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func main() {
	f := parseFlags()
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "ordview needs a terminal; run it from an interactive shell")
		os.Exit(1)
	}
	if err := run(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
