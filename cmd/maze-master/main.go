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

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-master/audio"
	"github.com/lixenwraith/maze-master/config"
	"github.com/lixenwraith/maze-master/input"
	"github.com/lixenwraith/maze-master/screen"
)

const (
	logDir      = "logs"
	logFileName = "maze-master.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	configFlag = flag.String("config", "", "TOML settings file")
	widthFlag  = flag.Int("width", 0, "Maze width in cells")
	heightFlag = flag.Int("height", 0, "Maze height in cells")
	seedFlag   = flag.Int64("seed", 0, "Seed of the first level (0 = time based)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to "+logDir+"/"+logFileName)
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

// setupLogging routes the standard logger to a file under logDir when debug is
// set and discards it otherwise, so nothing is written over the game screen.
// An existing log over maxLogSize is renamed with a timestamp first.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("maze-master-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// applyFlags overrides cfg with flags given on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *widthFlag
		case "height":
			cfg.Height = *heightFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "mute":
			cfg.Audio = !*muteFlag
		}
	})
}

func loadKeys(path string) (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if path == "" {
		return keys, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	keys.Merge(override)
	return keys, nil
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	keys, err := loadKeys(cfg.Keymap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer s.Fini()

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			s.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mMAZE-MASTER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	s.EnableMouse()
	s.HideCursor()

	sounds := audio.NewSoundManager()
	sounds.SetMuted(!cfg.Audio)
	if cfg.Audio {
		// Non-fatal, game can run without sound
		if err := sounds.Initialize(); err != nil {
			log.Printf("[audio] initialization failed: %v", err)
		} else {
			defer sounds.Cleanup()
		}
	}

	manager := screen.NewManager(&screen.Shared{
		Level:  cfg.Level(),
		Keys:   keys,
		Sounds: sounds,
	})

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	tick := cfg.Tick()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	log.Printf("[main] started: %dx%d seed %d tick %s", cfg.Width, cfg.Height, cfg.Seed, tick)
	manager.Draw(s)
	s.Show()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			running := true
			switch ev := ev.(type) {
			case *tcell.EventKey:
				running = manager.HandleKey(ev)
			case *tcell.EventMouse:
				running = manager.HandleMouse(ev)
			case *tcell.EventResize:
				s.Sync()
			}
			if !running {
				log.Printf("[main] quit")
				return
			}

		case <-ticker.C:
			if !manager.Update(tick) {
				return
			}
			manager.Draw(s)
			s.Show()
		}
	}
}
