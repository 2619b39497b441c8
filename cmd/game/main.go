package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/ledgegrab/internal/application/game"
	"github.com/younwookim/ledgegrab/internal/application/replay"
	"github.com/younwookim/ledgegrab/internal/application/scene/playing"
	"github.com/younwookim/ledgegrab/internal/infrastructure/config"
	"github.com/younwookim/ledgegrab/internal/infrastructure/render"
)

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	stageFlag := flag.String("stage", "demo", "Stage to load")
	watchFlag := flag.String("watch", "", "Load configs from this directory and reload player tuning on change")
	flag.Parse()

	// Embedded configs unless a directory is being watched
	var fsys fs.FS
	var loader *config.Loader
	if *watchFlag != "" {
		fsys = os.DirFS(*watchFlag)
		loader = config.NewLoader(*watchFlag)
	} else {
		sub, err := fs.Sub(configFS, "configs")
		if err != nil {
			log.Fatalf("Failed to get config subfs: %v", err)
		}
		fsys = sub
		loader = config.NewFSLoader(sub, "configs")
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// A replay runs on the stage it was recorded on unless -stage overrides it
	var replayer *replay.Replayer
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer = replay.NewReplayer(*data)
		log.Printf("Replaying %s (%d frames, seed: %d)", *replayFlag, len(data.Frames), data.Seed)
	}
	stageName := pickStage(*stageFlag, explicitFlags(flag.CommandLine)["stage"], replayer)

	stageCfg, err := loader.LoadStage(stageName)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	// Missing art falls back to box rendering
	sheet, err := render.LoadImage(fsys, cfg.Player.Sprite.Sheet)
	if err != nil {
		log.Printf("Sprite sheet unavailable, drawing boxes: %v", err)
	}

	p, err := playing.New(cfg, stageCfg, sheet, *recordFlag)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	if replayer != nil {
		p.SetReplay(replayer)
	}

	if *watchFlag != "" {
		w, err := config.NewWatcher(*watchFlag)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", *watchFlag, err)
		}
		p.WatchTuning(w, loader)
		log.Printf("Watching %s for tuning changes", *watchFlag)
	}

	display := cfg.Physics.Display
	g := game.New(p, display.ScreenWidth, display.ScreenHeight, display.Framerate)
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Ledge Grab")
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		g.Close()
		log.Fatal(err)
	}
}

// pickStage returns the stage to load. A replay's recorded stage wins over
// the default but not over an explicit -stage.
func pickStage(requested string, explicit bool, r *replay.Replayer) string {
	if r == nil || explicit || r.Stage() == "" {
		return requested
	}
	return r.Stage()
}

// explicitFlags returns the names of flags set on the command line
func explicitFlags(fset *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
