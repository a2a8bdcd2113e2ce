// Package tui is the terminal implementation of renderer.Presenter. It draws
// the hex map as text and turns modal requests into prompts on the same
// line-oriented input the host reads commands from.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/input"
	"hexcrawl/pkg/engine/path"
	"hexcrawl/pkg/engine/terminal"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/game/deck"
	"hexcrawl/pkg/game/gameplay"
	"hexcrawl/pkg/game/renderer"
	"hexcrawl/pkg/game/state"
	"hexcrawl/pkg/game/supply"
	"hexcrawl/pkg/logger"
)

// Lines needed outside the map:
// - Stage header + blank (2)
// - Column header (1)
// - Status line + blank (2)
// - Messages pane (header + 5 messages + footer = 7)
// - Input prompt (2)
const reservedLines = 14

// ErrNoAck is returned when the ambush warning could not be acknowledged
var ErrNoAck = errors.New("ambush warning not acknowledged")

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based presenter
type TUIRenderer struct {
	out         io.Writer
	ack         *input.Reader
	stepDelay   time.Duration
	interactive bool

	game     *state.Game
	purse    *supply.Purse
	progress *deck.Progress

	// Tiles revealed since the last frame, drawn brighter
	fresh mapset.Set[hex.Coord]
	// Path of the last hover hint
	highlight mapset.Set[hex.Coord]

	colorHidden     color.Style
	colorEmpty      color.Style
	colorFresh      color.Style
	colorBlocked    color.Style
	colorExit       color.Style
	colorEncounter  color.Style
	colorCombat     color.Style
	colorAggressive color.Style
	colorBarrier    color.Style
	colorPawn       color.Style
	colorPath       color.Style
	colorWarning    color.Style
	colorSubtle     color.Style
	colorAction     color.Style
	colorActionKey  color.Style

	regexpStringFunctions *regexp.Regexp
}

// Option configures a TUIRenderer
type Option func(*TUIRenderer)

// WithAck makes ambush warnings wait for a line from r
func WithAck(r *input.Reader) Option {
	return func(t *TUIRenderer) {
		t.ack = r
	}
}

// WithStepDelay redraws the map after every pawn step and pauses for d
func WithStepDelay(d time.Duration) Option {
	return func(t *TUIRenderer) {
		t.stepDelay = d
	}
}

// WithInteractive marks the output as a real terminal: the screen is
// cleared between frames and the terminal size is checked
func WithInteractive(interactive bool) Option {
	return func(t *TUIRenderer) {
		t.interactive = interactive
	}
}

// New creates a new TUI renderer writing to out
func New(out io.Writer, opts ...Option) *TUIRenderer {
	t := &TUIRenderer{
		out:       out,
		fresh:     mapset.New[hex.Coord](),
		highlight: mapset.New[hex.Coord](),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.Init()
	return t
}

// Init initializes colors and the markup parser
func (t *TUIRenderer) Init() {
	t.colorHidden = color.Style{color.FgGray}
	t.colorEmpty = color.Style{color.FgWhite}
	t.colorFresh = color.Style{color.FgWhite, color.OpBold}
	t.colorBlocked = color.Style{color.FgGray, color.OpBold}
	t.colorExit = color.Style{color.FgGreen}
	t.colorEncounter = color.Style{color.FgCyan, color.OpBold}
	t.colorCombat = color.Style{color.FgYellow, color.OpBold}
	t.colorAggressive = color.Style{color.FgRed, color.OpBold}
	t.colorBarrier = color.Style{color.FgMagenta}
	t.colorPawn = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorPath = color.Style{color.FgBlue, color.OpBold}
	t.colorWarning = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionKey = color.Style{color.FgMagenta, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:'-]+)}`)
}

// Attach points the renderer at the session it draws
func (t *TUIRenderer) Attach(g *state.Game, purse *supply.Purse, progress *deck.Progress) {
	t.game = g
	t.purse = purse
	t.progress = progress
	t.fresh = mapset.New[hex.Coord]()
	t.highlight = mapset.New[hex.Coord]()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleHidden:
		return t.colorHidden.Sprint(text)
	case renderer.StyleEmpty:
		return t.colorEmpty.Sprint(text)
	case renderer.StyleBlocked:
		return t.colorBlocked.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StyleEncounter:
		return t.colorEncounter.Sprint(text)
	case renderer.StyleCombat:
		return t.colorCombat.Sprint(text)
	case renderer.StyleAggressive:
		return t.colorAggressive.Sprint(text)
	case renderer.StyleBarrier:
		return t.colorBarrier.Sprint(text)
	case renderer.StylePawn:
		return t.colorPawn.Sprint(text)
	case renderer.StylePath:
		return t.colorPath.Sprint(text)
	case renderer.StyleWarning:
		return t.colorWarning.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system:
// GT{KEY} translates, ACTION{word} highlights a command, ENEMY{name} a foe
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ACTION":
			val = t.colorActionKey.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		case "ENEMY":
			val = t.colorCombat.Sprint(operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.interactive {
		fmt.Fprint(t.out, "\033[H\033[2J")
	}
}

// ShowMessage prints a formatted line and adds it to the message log
func (t *TUIRenderer) ShowMessage(msg string, args ...any) {
	formatted := t.FormatText(msg, args...)
	if t.game != nil {
		t.game.AddMessage(formatted)
	}
	fmt.Fprintln(t.out, formatted)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame() {
	if t.game == nil {
		return
	}
	t.Clear()
	t.printHeader()
	t.printMap()
	t.printStatusBar()
	t.printMessagesPane()
	fmt.Fprint(t.out, "\n> ")
	t.fresh = mapset.New[hex.Coord]()
}

// ShowHint highlights the hinted path and describes what a click would do
func (t *TUIRenderer) ShowHint(h gameplay.HoverHint) {
	t.highlight = mapset.New[hex.Coord]()
	for _, c := range h.Path {
		t.highlight.Put(c)
	}
	switch {
	case !h.CanMove:
		t.ShowMessage("GT{HINT_CANNOT_MOVE} %v", h.Target)
	case h.Encounter:
		t.ShowMessage("GT{HINT_ENCOUNTER} %v (%s)", h.Target, kindName(h.Kind))
	default:
		t.ShowMessage("GT{HINT_MOVE} %v: %d GT{HINT_STEPS}, %d GT{HINT_TOKENS}", h.Target, h.Path.Steps(), h.Cost)
	}
}

// ClearHint removes the hover highlight
func (t *TUIRenderer) ClearHint() {
	t.highlight = mapset.New[hex.Coord]()
}

// PrintHelp lists the commands grouped by action
func (t *TUIRenderer) PrintHelp() {
	bindings := input.GetBindingsByAction()
	for act := input.ActionClick; act <= input.ActionQuit; act++ {
		codes := bindings[act]
		if len(codes) == 0 {
			continue
		}
		verb := codes[0]
		for _, c := range codes {
			if len(c) > len(verb) {
				verb = c
			}
		}
		usage := t.FormatText("ACTION{%s}", verb)
		if act.NeedsCoord() {
			usage += " <col> <row>"
		}
		fmt.Fprintf(t.out, "- %s\t%s\n", usage, input.ActionName(act))
	}
}

// OnTileRevealed implements renderer.Presenter
func (t *TUIRenderer) OnTileRevealed(c hex.Coord) {
	t.fresh.Put(c)
}

// OnPawnStep implements renderer.Presenter. With a step delay set the map
// is redrawn for every hex walked.
func (t *TUIRenderer) OnPawnStep(ctx context.Context, from, to hex.Coord) error {
	logger.Log.WithField("from", from.String()).WithField("to", to.String()).Debug("pawn step")
	if t.stepDelay <= 0 {
		return nil
	}
	t.RenderFrame()
	timer := time.NewTimer(t.stepDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// OnEncounterOpen implements renderer.Presenter
func (t *TUIRenderer) OnEncounterOpen(c hex.Coord, enc *world.Encounter, kind world.EncounterKind) {
	t.highlight = mapset.New[hex.Coord]()
	switch kind {
	case world.KindCombat:
		t.ShowMessage("GT{ENCOUNTER_COMBAT} %v: %s", c, t.enemyList(enc))
		t.ShowMessage("ACTION{win} / ACTION{lose}")
	case world.KindChoice:
		t.ShowMessage("GT{ENCOUNTER_CHOICE} %v", c)
		t.ShowMessage("ACTION{done} / ACTION{dismiss}")
	default:
		t.ShowMessage("GT{ENCOUNTER_SIMPLE} %v", c)
		t.ShowMessage("ACTION{done} / ACTION{dismiss}")
	}
	if text, ok := enc.Payload.(string); ok && text != "" {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+text))
	}
}

// OnEncounterCleared implements renderer.Presenter
func (t *TUIRenderer) OnEncounterCleared(c hex.Coord) {
	t.ShowMessage("GT{ENCOUNTER_CLEARED} %v", c)
}

// OnAmbushWarning implements renderer.Presenter. It blocks until the player
// presses Enter, when an input reader was given.
func (t *TUIRenderer) OnAmbushWarning(ctx context.Context, enemyName string) error {
	t.ShowMessage("%s", t.colorWarning.Sprint(gotext.Get("AMBUSH_WARNING"))+" "+t.colorCombat.Sprint(enemyName))
	if t.ack == nil {
		return nil
	}
	fmt.Fprint(t.out, t.FormatText("GT{PRESS_ENTER} "))
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := t.ack.ReadLine(); err != nil {
		return fmt.Errorf("%w: %w", ErrNoAck, err)
	}
	return nil
}

// OnBarrierChanged implements renderer.Presenter
func (t *TUIRenderer) OnBarrierChanged(c hex.Coord, stack world.BarrierStack) {
	if stack.Empty() {
		t.ShowMessage("GT{BARRIER_GONE} %v", c)
		return
	}
	t.ShowMessage("GT{BARRIER_WEAKENED} %v (%d)", c, stack.Len())
}

func (t *TUIRenderer) enemyList(enc *world.Encounter) string {
	names := make([]string, 0, len(enc.Enemies))
	for _, e := range enc.Enemies {
		names = append(names, "ENEMY{"+e.Name+"}")
	}
	return t.FormatText("%s", strings.Join(names, ", "))
}

func kindName(k world.EncounterKind) string {
	switch k {
	case world.KindCombat:
		return gotext.Get("KIND_COMBAT")
	case world.KindChoice:
		return gotext.Get("KIND_CHOICE")
	default:
		return gotext.Get("KIND_SIMPLE")
	}
}

// printHeader prints the stage and region
func (t *TUIRenderer) printHeader() {
	if t.progress != nil {
		header := t.colorAction.Sprintf("%s %d: %s", gotext.Get("STAGE"), t.progress.Stage, deck.RegionName(t.progress.Region()))
		if t.progress.IsFinal() {
			header += " " + t.colorWarning.Sprint(gotext.Get("FINAL_STAGE"))
		}
		fmt.Fprintln(t.out, header)
	} else {
		fmt.Fprintln(t.out, t.colorAction.Sprintf("%s %d", gotext.Get("STAGE"), t.game.Stage))
	}
	fmt.Fprintln(t.out)
}

// renderTile returns the glyph for the tile at c
func (t *TUIRenderer) renderTile(c hex.Coord) string {
	g := t.game
	tile := g.Tiles.Get(c)
	switch {
	case tile == nil:
		return " "
	case g.Pawn.Placed && g.Pawn.Pos == c:
		return t.StyleText(renderer.GlyphPawn, renderer.StylePawn)
	case !tile.Revealed:
		return t.StyleText(renderer.GlyphHidden, renderer.StyleHidden)
	case tile.HasEncounter():
		return t.renderEncounter(tile.Encounter)
	case tile.Terrain == world.TerrainBlocked || !tile.Passable:
		return t.StyleText(renderer.GlyphBlocked, renderer.StyleBlocked)
	case tile.IsExit():
		return t.StyleText(renderer.GlyphExit, renderer.StyleExit)
	case t.highlight.Has(c):
		return t.StyleText(renderer.GlyphPath, renderer.StylePath)
	case !tile.Barriers.Empty():
		return t.StyleText(strconv.Itoa(tile.Barriers.Len()), renderer.StyleBarrier)
	case t.fresh.Has(c):
		return t.colorFresh.Sprint(renderer.GlyphEmpty)
	default:
		return t.StyleText(renderer.GlyphEmpty, renderer.StyleEmpty)
	}
}

func (t *TUIRenderer) renderEncounter(enc *world.Encounter) string {
	switch enc.EffectiveKind() {
	case world.KindCombat:
		if enc.Aggressive {
			return t.StyleText(renderer.GlyphAggressive, renderer.StyleAggressive)
		}
		return t.StyleText(renderer.GlyphCombat, renderer.StyleCombat)
	case world.KindChoice:
		return t.StyleText(renderer.GlyphChoice, renderer.StyleEncounter)
	default:
		return t.StyleText(renderer.GlyphSimple, renderer.StyleEncounter)
	}
}

// printMap renders the hex map. Every map row takes two text lines: even
// columns on the first, odd columns half a row lower on the second.
func (t *TUIRenderer) printMap() {
	ext := t.game.Tiles.Extent()

	if t.interactive {
		w, h := terminal.GetSize()
		if !terminal.Fits(w, h, 3*ext.Cols+4, 2*ext.Rows, reservedLines) {
			fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("MAP_TOO_LARGE")))
		}
	}

	var header strings.Builder
	header.WriteString("    ")
	for col := 0; col < ext.Cols; col++ {
		fmt.Fprintf(&header, "%-3d", col)
	}
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.TrimRight(header.String(), " ")))

	for row := 0; row < ext.Rows; row++ {
		for half := 0; half < 2; half++ {
			var line strings.Builder
			if half == 0 {
				line.WriteString(t.colorSubtle.Sprintf("%3d ", row))
			} else {
				line.WriteString("    ")
			}
			for col := 0; col < ext.Cols; col++ {
				if col&1 != half {
					line.WriteString("   ")
					continue
				}
				line.WriteString(t.renderTile(hex.At(col, row)))
				line.WriteString("  ")
			}
			fmt.Fprintln(t.out, strings.TrimRight(line.String(), " "))
		}
	}
	fmt.Fprintln(t.out)
}

// printStatusBar renders tokens and reach
func (t *TUIRenderer) printStatusBar() {
	g := t.game
	parts := []string{}
	if t.purse != nil {
		parts = append(parts, t.colorAction.Sprintf("%s: %d", gotext.Get("TOKENS"), t.purse.Tokens()))
		if spent := t.purse.Spent(); spent > 0 {
			parts = append(parts, t.colorSubtle.Sprintf("%s: %d", gotext.Get("SPENT"), spent))
		}
	}
	if g.Pawn.Placed {
		parts = append(parts, t.colorSubtle.Sprintf("%s: %v", gotext.Get("POSITION"), g.Pawn.Pos))
		reach := len(path.Reachable(g.Tiles, g.Pawn.Pos)) - 1
		parts = append(parts, t.colorSubtle.Sprintf("%s: %d", gotext.Get("IN_REACH"), reach))
	}
	if g.Machine.Busy() {
		parts = append(parts, t.colorWarning.Sprint(g.Machine.Phase().String()))
	}
	fmt.Fprintln(t.out, strings.Join(parts, t.colorSubtle.Sprint("  |  ")))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane() {
	width := terminal.DefaultWidth
	if t.interactive {
		width, _ = terminal.GetSize()
	}

	label := " " + gotext.Get("MESSAGES") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(t.game.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+gotext.Get("NO_MESSAGES")))
	} else {
		for _, msg := range t.game.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
