package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"hexcrawl/pkg/config"
	"hexcrawl/pkg/engine/input"
	"hexcrawl/pkg/engine/terminal"
	"hexcrawl/pkg/game/deck"
	"hexcrawl/pkg/game/devtools"
	"hexcrawl/pkg/game/gameplay"
	"hexcrawl/pkg/game/mapdata"
	"hexcrawl/pkg/game/renderer/tui"
	"hexcrawl/pkg/game/state"
	"hexcrawl/pkg/game/supply"
	"hexcrawl/pkg/logger"
	"hexcrawl/pkg/telemetry"
)

// session is everything one run of the crawl needs
type session struct {
	game       *state.Game
	progress   *deck.Progress
	purse      *supply.Purse
	doc        *mapdata.Document
	view       *tui.TUIRenderer
	dispatcher *gameplay.Dispatcher
	in         *input.Reader
}

func initGettext(cfg config.Config) {
	gotext.Configure(cfg.LocaleDir, cfg.Locale, "default")
}

func initLogging(cfg config.Config) (io.Closer, error) {
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if cfg.LogFile == "" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return f, nil
}

// loadMap returns the developer map, the configured map or the bundled one
func loadMap(cfg config.Config, devMap bool) (*mapdata.Document, error) {
	if devMap {
		return devtools.DevMap(), nil
	}
	return mapdata.Load(cfg.MapPath)
}

// buildSession loads the map and wires the dispatcher to the terminal view
func buildSession(cfg config.Config, doc *mapdata.Document, startStage int, opts ...gameplay.Option) (*session, error) {
	store, err := mapdata.Build(doc)
	if err != nil {
		return nil, err
	}

	s := &session{
		game:     state.NewGame(store),
		progress: deck.NewProgress(startStage),
		purse:    supply.NewPurse(cfg.MoveTokens),
		doc:      doc,
		in:       input.NewReader(os.Stdin),
	}
	s.game.Stage = s.progress.Stage
	mapdata.AddBarriers(store, deck.ParamsFor(s.progress.Stage).BarrierBonus)

	interactive := terminal.IsInteractive(os.Stdout)
	if !interactive {
		color.Enable = false
	}
	viewOpts := []tui.Option{tui.WithAck(s.in), tui.WithInteractive(interactive)}
	if interactive {
		viewOpts = append(viewOpts, tui.WithStepDelay(120*time.Millisecond))
	}
	s.view = tui.New(os.Stdout, viewOpts...)
	s.view.Attach(s.game, s.purse, s.progress)

	opts = append([]gameplay.Option{gameplay.WithSpender(s.purse)}, opts...)
	s.dispatcher = gameplay.NewDispatcher(s.game, s.view, opts...)
	return s, nil
}

// advanceStage replaces the map with a fresh copy for the next stage.
// Returns false when the final stage was just completed.
func (s *session) advanceStage(ctx context.Context) (bool, error) {
	if !s.progress.Advance() {
		return false, nil
	}
	s.game.AdvanceStage()
	s.game.Stage = s.progress.Stage
	if err := mapdata.BuildInto(s.game.Tiles, s.doc); err != nil {
		return false, err
	}
	params := deck.ParamsFor(s.progress.Stage)
	mapdata.AddBarriers(s.game.Tiles, params.BarrierBonus)
	s.purse.Add(params.TokenRefill)
	s.view.Attach(s.game, s.purse, s.progress)

	s.game.ClearMessages()
	s.view.ShowMessage("GT{STAGE_REACHED} %d: %s", s.progress.Stage, deck.RegionName(s.progress.Region()))
	logger.Log.WithField("stage", s.progress.Stage).WithField("refill", params.TokenRefill).Info("stage advanced")

	s.report(s.dispatcher.Start(ctx, s.doc.Start))
	return true, nil
}

// report turns a dispatcher outcome into a message for the player
func (s *session) report(out gameplay.Outcome) {
	switch out {
	case gameplay.OutcomeIgnored:
		s.view.ShowMessage("GT{BUSY}")
	case gameplay.OutcomeBlocked:
		s.view.ShowMessage("GT{BLOCKED}")
	case gameplay.OutcomeNoPath:
		s.view.ShowMessage("GT{NO_PATH}")
	case gameplay.OutcomeRefused:
		s.view.ShowMessage("GT{NOT_ENOUGH_TOKENS}")
	case gameplay.OutcomeCombatWon:
		s.view.ShowMessage("GT{COMBAT_WON}")
	case gameplay.OutcomeCombatLost:
		s.view.ShowMessage("GT{COMBAT_LOST}")
	case gameplay.OutcomeEncounterCompleted:
		s.view.ShowMessage("GT{ENCOUNTER_COMPLETED}")
	case gameplay.OutcomeEncounterDismissed:
		s.view.ShowMessage("GT{ENCOUNTER_DISMISSED}")
	}
}

// settle reports an outcome and moves on to the next stage when the pawn
// has reached the exit. Returns false when the run is over.
func (s *session) settle(ctx context.Context, out gameplay.Outcome) (bool, error) {
	s.report(out)
	if out != gameplay.OutcomeExitReached {
		return true, nil
	}
	more, err := s.advanceStage(ctx)
	if err != nil {
		return false, err
	}
	if !more {
		s.view.ShowMessage("GT{VICTORY}")
		return false, nil
	}
	return true, nil
}

// processCommand runs one player command. Returns false when the session is over.
func (s *session) processCommand(ctx context.Context, cmd input.Command) (bool, error) {
	d := s.dispatcher
	switch cmd.Action {
	case input.ActionQuit:
		return false, nil
	case input.ActionHint:
		s.view.PrintHelp()
	case input.ActionMap:
		s.view.ClearHint()
	case input.ActionDump:
		p, err := devtools.DumpMapToFile(s.game, d.Reveal())
		if err != nil {
			s.view.ShowMessage("%s", err.Error())
		} else {
			s.view.ShowMessage("GT{MAP_DUMPED} %s", p)
		}
	case input.ActionHover:
		s.view.ShowHint(d.OnHoverTile(ctx, cmd.Target))
	case input.ActionClick:
		s.view.ClearHint()
		return s.settle(ctx, d.OnTileClicked(ctx, cmd.Target))
	case input.ActionReward:
		return s.settle(ctx, d.OpenCombatFromReward(ctx, cmd.Target))
	case input.ActionWin:
		return s.settle(ctx, d.OnCombatEnded(ctx, true))
	case input.ActionLose:
		return s.settle(ctx, d.OnCombatEnded(ctx, false))
	case input.ActionComplete:
		return s.settle(ctx, d.OnEncounterResolved(ctx, true))
	case input.ActionDismiss:
		return s.settle(ctx, d.OnEncounterResolved(ctx, false))
	}
	return true, nil
}

func (s *session) mainLoop(ctx context.Context) error {
	for {
		s.view.RenderFrame()

		cmd, err := s.in.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if errors.Is(err, input.ErrUnknownCommand) {
				s.view.ShowMessage("GT{UNKNOWN_COMMAND}")
			} else {
				s.view.ShowMessage("%s", err.Error())
			}
			continue
		}

		more, err := s.processCommand(ctx, cmd)
		if err != nil || !more {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	mapPath := flag.String("map", cfg.MapPath, "JSON map document (empty for the bundled map)")
	tokens := flag.Int("tokens", cfg.MoveTokens, "starting move tokens")
	startStage := flag.Int("stage", 1, "starting stage number (for developer testing)")
	devMap := flag.Bool("dev", false, "play the developer testing map")
	flag.Parse()
	cfg.MapPath = *mapPath
	cfg.MoveTokens = *tokens

	closer, err := initLogging(cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}
	initGettext(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var opts []gameplay.Option
	if cfg.Tracing {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Log.WithError(err).Warn("tracing disabled")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Log.WithError(err).Warn("tracing shutdown failed")
				}
			}()
			opts = append(opts, gameplay.WithTracer(telemetry.Tracer("gameplay")))
		}
	}

	doc, err := loadMap(cfg, *devMap)
	if err != nil {
		return err
	}
	s, err := buildSession(cfg, doc, *startStage, opts...)
	if err != nil {
		return err
	}
	logger.Log.WithField("map", s.doc.Name).WithField("stage", s.progress.Stage).Info("session started")

	s.view.ShowMessage("GT{WELCOME} %s", s.doc.Name)
	s.report(s.dispatcher.Start(ctx, s.doc.Start))
	return s.mainLoop(ctx)
}

func main() {
	if err := run(); err != nil {
		logger.Log.WithError(err).Error("hexcrawl stopped")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
