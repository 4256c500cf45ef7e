package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/springjump/internal/application/game"
	"github.com/younwookim/springjump/internal/application/replay"
	"github.com/younwookim/springjump/internal/application/scene/playing"
	"github.com/younwookim/springjump/internal/application/system"
	"github.com/younwookim/springjump/internal/infrastructure/config"
)

type options struct {
	record    string
	replay    string
	stage     string
	configDir string
	watch     bool
	verbose   bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.record, "record", "", "Record input to file (e.g., -record replay.json)")
	flag.StringVar(&o.replay, "replay", "", "Play back a recorded input file")
	flag.StringVar(&o.stage, "stage", "demo", "Stage name under configs/stages")
	flag.StringVar(&o.configDir, "configs", "", "Load configs from this directory instead of the embedded ones")
	flag.BoolVar(&o.watch, "watch", false, "Reload configs when files change (requires -configs)")
	flag.BoolVar(&o.verbose, "v", false, "Log charge events")
	flag.Parse()
	return o
}

// validate rejects flag combinations that cannot work together. A recording
// stores one charge.yaml snapshot, so hot reload would make it diverge on replay.
func (o options) validate() error {
	if o.watch && o.configDir == "" {
		return errors.New("-watch requires -configs")
	}
	if o.watch && o.record != "" {
		return errors.New("-watch cannot be combined with -record")
	}
	return nil
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func main() {
	o := parseFlags()
	if err := o.validate(); err != nil {
		log.Fatal(err)
	}

	loader, err := newLoader(o.configDir)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sceneOpts := playing.Options{StageName: o.stage}
	if o.verbose {
		sceneOpts.Logger = log.Default()
	}

	stageName := o.stage
	if o.replay != "" {
		data, err := replay.LoadReplay(o.replay)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if err := useRecordedCharge(cfg, data); err != nil {
			log.Fatalf("Failed to load replay charge config: %v", err)
		}
		if data.Stage != "" {
			stageName = data.Stage
		}
		sceneOpts.Replayer = replay.NewReplayer(*data)
		log.Printf("Replaying %s (%d frames)", o.replay, len(data.Frames))
	} else if o.record != "" {
		charge, err := loader.ReadCharge()
		if err != nil {
			log.Fatalf("Failed to read charge config: %v", err)
		}
		sceneOpts.RecordPath = o.record
		sceneOpts.Charge = charge
	}

	stageCfg, err := loader.LoadStage(stageName)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}
	stage := system.LoadStage(stageCfg)
	sceneOpts.StageName = stageName

	if o.watch && o.replay == "" {
		watcher, err := config.NewWatcher(o.configDir)
		if err != nil {
			log.Fatalf("Failed to watch configs: %v", err)
		}
		defer func() { _ = watcher.Close() }()
		sceneOpts.Watcher = watcher
		sceneOpts.Loader = loader
		log.Printf("Watching %s for changes", o.configDir)
	}

	display := cfg.Physics.Display
	g := game.New(playing.New(cfg, stageCfg, stage, sceneOpts), display.ScreenWidth, display.ScreenHeight, display.Framerate)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Spring Jump")
	ebiten.SetTPS(display.Framerate)

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// useRecordedCharge swaps in the charge tuning stored with a recording
func useRecordedCharge(cfg *config.GameConfig, data *replay.ReplayData) error {
	if data.Charge == "" {
		return nil
	}
	charge, err := config.ParseCharge([]byte(data.Charge))
	if err != nil {
		return err
	}
	jumpCfg, err := charge.JumpConfig()
	if err != nil {
		return err
	}
	cfg.Charge = charge
	cfg.Jump = jumpCfg
	return nil
}
