package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/arena-fighter/audio"
	"github.com/lixenwraith/arena-fighter/config"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/input"
	"github.com/lixenwraith/arena-fighter/logging"
	"github.com/lixenwraith/arena-fighter/network"
	"github.com/lixenwraith/arena-fighter/status"
	"github.com/lixenwraith/arena-fighter/system"
)

// options are the command-line overrides applied on top of the loaded config
type options struct {
	configDir string
	headless  bool
	wsAddr    string
	mute      bool
	seed      uint64
	seedSet   bool
	logLevel  string
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var o options
	fs.StringVar(&o.configDir, "config", ".", "Directory searched for arena.toml")
	fs.BoolVar(&o.headless, "headless", false, "Run without the terminal view")
	fs.StringVar(&o.wsAddr, "ws", "", "Serve snapshots over websocket on this address, e.g. :7777")
	fs.BoolVar(&o.mute, "mute", false, "Disable audio")
	fs.Uint64Var(&o.seed, "seed", 0, "RNG seed for arena layout and enemy wander")
	fs.StringVar(&o.logLevel, "log-level", "", "Override log level (trace|debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			o.seedSet = true
		}
	})
	return o, nil
}

// apply writes flag overrides into cfg
func (o options) apply(cfg *config.Config) {
	if o.seedSet {
		cfg.Engine.Seed = o.seed
	}
	if o.wsAddr != "" {
		cfg.Network.Addr = o.wsAddr
	}
	if o.mute {
		cfg.Audio.Enabled = false
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "arena-fighter: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	opts.apply(cfg)

	// The terminal view owns stdout and stderr; logs go to the file only
	var console io.Writer
	if opts.headless {
		console = os.Stderr
	}
	log, closeLog, err := logging.New(cfg.Log, console)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLog()

	log.Info().
		Str("config", cfg.Source).
		Uint64("seed", cfg.Engine.Seed).
		Bool("headless", opts.headless).
		Msg("starting arena-fighter")

	world := engine.NewWorld(cfg.Engine, log)

	sound := startAudio(cfg.Audio, log)
	if sound != nil {
		defer sound.Cleanup()
		system.RegisterAll(world, sound, status.Meter())
	} else {
		// A nil *SoundManager in the interface would not read as nil
		system.RegisterAll(world, nil, status.Meter())
	}

	bridge, err := status.NewBridge(world.Status, status.Meter())
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}
	defer bridge.Close()

	keys := input.DefaultKeyTable()
	if err := input.ApplyBindings(keys, cfg.Input.Keys); err != nil {
		return fmt.Errorf("applying key bindings: %w", err)
	}
	collector := input.NewCollector(keys, cfg.Input.HoldWindow)
	if snap := world.Snapshot(); snap != nil {
		if pv, ok := snap.Find(snap.Player); ok {
			collector.SetAnchor(pv.Position)
			collector.SetCursor(pv.Position)
		}
	}

	var server *network.Server
	if cfg.Network.Addr != "" {
		server = network.NewServer(networkConfig(cfg.Network), world, collector, world.Status, log.With().Str("component", "network").Logger())
		server.SetArena(cfg.Engine.Arena.HalfExtent, int(time.Second/cfg.TickInterval))
		if err := server.Start(); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Network.WriteTimeout)
			defer cancel()
			if err := server.Stop(ctx); err != nil {
				log.Warn().Err(err).Msg("websocket server shutdown")
			}
		}()
	}

	clock := engine.NewPausableClock(nil)
	scheduler, updates := engine.NewClockScheduler(world, clock, collector, cfg.TickInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler.Start()
	defer scheduler.Stop()

	app := &app{
		cfg:       cfg,
		log:       log,
		world:     world,
		clock:     clock,
		collector: collector,
		sound:     sound,
		server:    server,
		updates:   updates,
	}

	if opts.headless {
		app.runHeadless(ctx)
	} else if err := app.runTerminal(ctx); err != nil {
		return err
	}

	log.Info().Uint64("ticks", scheduler.TickCount()).Msg("shutting down")
	return nil
}

// startAudio opens the output device; failure degrades to silent play
func startAudio(cfg audio.Config, log zerolog.Logger) *audio.SoundManager {
	if !cfg.Enabled {
		return nil
	}
	sm := audio.NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing silent")
		return nil
	}
	return sm
}

func networkConfig(c config.NetworkConfig) *network.Config {
	nc := network.DefaultConfig()
	nc.Addr = c.Addr
	nc.BroadcastInterval = c.BroadcastInterval
	nc.WriteTimeout = c.WriteTimeout
	nc.PingInterval = c.PingInterval
	nc.PongTimeout = c.PongTimeout
	nc.ReadLimit = c.ReadLimit
	return nc
}
