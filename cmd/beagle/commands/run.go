package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/agiangrant/beagle"
	"github.com/agiangrant/beagle/demo/quad"
	"github.com/pkg/profile"
)

// Run implements the 'beagle run' command
func Run(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", beagle.ConfigFile, "Path to beagle.toml")
	demo := fs.Bool("demo", false, "Draw the textured quad demo")
	prof := fs.String("profile", "", "Write a profile: cpu or mem")
	if err := fs.Parse(args); err != nil {
		return err
	}

	stop, err := startProfile(*prof)
	if err != nil {
		return err
	}
	defer stop()

	cfg, err := beagle.LoadConfig(beagle.ResolveConfigPath(*configPath))
	if err != nil {
		return err
	}

	engine, err := beagle.New(cfg)
	if err != nil {
		return err
	}
	if err := engine.Register(&beagle.DriverInfo{}); err != nil {
		return err
	}
	if *demo {
		if err := engine.Register(quad.New([4]float32{0.2, 0.6, 1, 1})); err != nil {
			return err
		}
	}

	if err := engine.Startup(); err != nil {
		_ = engine.Shutdown()
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runErr := engine.Run(ctx)
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}
	if err := engine.Shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func startProfile(kind string) (func(), error) {
	var mode func(*profile.Profile)
	switch kind {
	case "":
		return func() {}, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfileAllocs
	default:
		return nil, fmt.Errorf("unknown profile %q (want cpu or mem)", kind)
	}
	p := profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook)
	return p.Stop, nil
}
