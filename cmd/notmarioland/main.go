package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/notmarioland/assets"
	"github.com/automoto/notmarioland/config"
	"github.com/automoto/notmarioland/game"
	"github.com/automoto/notmarioland/leveldata"
	"github.com/automoto/notmarioland/replay"
	"github.com/automoto/notmarioland/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Screen.Width, config.Screen.Height)
	return config.Screen.Width, config.Screen.Height
}

// loadLevels reads the levelset in dir, or the bundled demo when dir is
// empty.
func loadLevels(dir string) (*leveldata.Levelset, error) {
	if dir == "" {
		return assets.LoadDemo()
	}
	return leveldata.LoadLevelset(os.DirFS(dir), ".")
}

func main() {
	configPath := flag.String("config", "", "YAML config overrides")
	levels := flag.String("levels", "", "Levelset directory (empty = bundled demo)")
	watch := flag.Bool("watch", false, "Reload the levelset when its files change")
	record := flag.String("record", "", "Write the run's input to this file on exit")
	replayPath := flag.String("replay", "", "Play back a recorded run")
	headless := flag.Bool("headless", false, "Play -replay without a window")
	scale := flag.Int("scale", 0, "Window scale (0 = config)")
	debug := flag.Bool("debug", false, "Draw collision boxes and log level loads")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *levels != "" {
		config.Levels.Dir = *levels
	}
	if *watch {
		config.Levels.Watch = true
	}
	if *scale > 0 {
		config.Screen.Scale = *scale
	}
	if *debug {
		config.Debug.ShowBoxes = true
		config.Debug.LogLoads = true
	}

	dir := config.Levels.Dir
	ls, err := loadLevels(dir)
	if err != nil {
		log.Fatalf("Failed to load levelset: %v", err)
	}
	if err := ls.Validate(); err != nil {
		log.Printf("Warning: levelset has graph errors: %v", err)
	}

	session, err := game.NewSession(ls)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	var rec *replay.Recording
	if *replayPath != "" {
		if rec, err = replay.Load(*replayPath); err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if rec.Levelset != ls.Name {
			log.Printf("Warning: replay was recorded on %q, playing on %q", rec.Levelset, ls.Name)
		}
	}

	if *headless {
		if rec == nil {
			log.Fatal("-headless needs -replay")
		}
		runHeadless(session, rec)
		return
	}

	opts := scenes.PlayOptions{}
	if rec != nil {
		opts.Playback = rec.Source()
	}
	if *record != "" {
		opts.Recorder = replay.NewRecorder(ls.Name)
	}
	if config.Levels.Watch && dir != "" {
		w, err := leveldata.NewWatcher(dir)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", dir, err)
		}
		defer w.Close()
		opts.Watcher = w
		opts.Reload = func() (*leveldata.Levelset, error) { return loadLevels(dir) }
	}

	ebiten.SetWindowSize(config.Screen.Width*config.Screen.Scale, config.Screen.Height*config.Screen.Scale)
	ebiten.SetWindowTitle(ls.Name)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := &Game{scene: scenes.NewPlayScene(session, opts)}
	err = ebiten.RunGame(g)

	if opts.Recorder != nil {
		if err := replay.Save(*record, opts.Recorder.Recording()); err != nil {
			log.Printf("Failed to save replay: %v", err)
		} else {
			log.Printf("Saved %d ticks to %s", opts.Recorder.Len(), *record)
		}
	}
	if err != nil && !errors.Is(err, scenes.ErrQuit) {
		log.Fatal(err)
	}
}

// runHeadless plays a recording in real time without a window, stopping
// on SIGINT.
func runHeadless(session *game.Session, rec *replay.Recording) {
	loop := game.NewGameLoop(session, config.Screen.TickRate, rec.Source())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping replay...")
		loop.Stop()
	}()

	if err := loop.Run(); err != nil {
		log.Fatalf("Replay error: %v", err)
	}
	log.Printf("Replay finished: mode %s, %d ticks, %d deaths",
		session.Mode(), session.State.Timer, session.State.Deaths)
}
