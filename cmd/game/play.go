// cmd/game/play.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-iso-arena/internal/app"
	"go-iso-arena/internal/assets"
	"go-iso-arena/internal/audio"
	"go-iso-arena/internal/config"
	"go-iso-arena/internal/state"
	"go-iso-arena/internal/storage"
	"go-iso-arena/pkg/render"
)

var (
	flagMute     bool
	flagAutoplay bool
	flagWave     int
	flagMenu     bool
	flagAssets   string
	flagArmor    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Open the game window and start a run.

Controls:
  WASD / Arrows  - Move
  Space          - Attack
  1 / 2 / 3      - Spin, heal, fireball
  T              - Toggle autoplay
  P / Esc        - Pause
  R              - Restart after falling`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().BoolVar(&flagAutoplay, "autoplay", false, "Start with autoplay on")
	cmd.Flags().IntVar(&flagWave, "wave", 1, "Starting wave")
	cmd.Flags().BoolVar(&flagMenu, "menu", false, "Show the start menu first")
	cmd.Flags().StringVar(&flagAssets, "assets", assets.DefaultRoot, "Asset directory")
	cmd.Flags().StringVar(&flagArmor, "armor", assets.DefaultArmor, "Hero armor set")
}

// AppGame адаптирует машину состояний к ebiten.Game.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func runPlay(cmd *cobra.Command, args []string) {
	tuning, logger, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("records disabled", "err", err)
	} else {
		defer store.Close()
	}
	bestWave := 0
	if store != nil {
		if bestWave, err = store.BestWave(); err != nil {
			logger.Warn("cannot read best wave", "err", err)
		}
	}

	g := app.NewGame(tuning, app.Options{
		Seed:      flagSeed,
		StartWave: flagWave,
		Autoplay:  flagAutoplay,
		Logger:    logger,
	})

	sink := audio.NewSink(logger, flagMute)
	if err := sink.Init(); err != nil {
		logger.Warn("audio unavailable", "err", err)
	}
	defer sink.Close()
	g.OnReset(sink.Attach)

	sprites := assets.Load(assets.Resolve(flagAssets, flagArmor), logger)
	renderer := render.NewRenderer(sprites, g.Seed())

	sm := state.NewStateMachine()
	newPlay := func(autoplay bool) state.State {
		if autoplay {
			g.SetAutoplay(true)
		}
		ps := state.NewPlayState(sm, g, renderer)
		ps.RunEnded = func(g *app.Game) { saveRun(store, g, logger) }
		return ps
	}
	if flagMenu {
		sm.SetState(state.NewMenuState(sm, renderer.Face(), bestWave, newPlay))
	} else {
		sm.SetState(newPlay(flagAutoplay))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Iso Arena")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()}); err != nil {
		logger.Error("game stopped", "err", err)
	}
	saveRun(store, g, logger)
}

// saveRun пишет забег в таблицу рекордов; пустые забеги не сохраняются.
func saveRun(store *storage.Store, g *app.Game, logger *log.Logger) {
	if store == nil || (g.Ledger.Kills == 0 && !g.Fallen()) {
		return
	}
	rec := storage.RunRecord{
		Seed:      g.Seed(),
		BestWave:  g.BestWave(),
		Kills:     g.Ledger.Kills,
		BossKills: g.Ledger.BossKills,
		Level:     g.Ledger.Stats().Level,
	}
	id, err := store.SaveRun(rec)
	if err != nil {
		logger.Error("cannot save run", "err", err)
		return
	}
	logger.Info("run saved", "id", id, "wave", rec.BestWave, "cleared", g.Ledger.WavesClear, "kills", rec.Kills)
}
