package input

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"hexcrawl/pkg/engine/hex"
)

// ErrUnknownCommand is returned for a verb with no binding
var ErrUnknownCommand = errors.New("unknown command")

// Action represents a high-level intent in the game
type Action int

const (
	ActionNone Action = iota

	// Map interaction, these take a coordinate
	ActionClick
	ActionHover
	ActionReward

	// Resolving what is open
	ActionWin
	ActionLose
	ActionComplete
	ActionDismiss

	// Meta / UI
	ActionMap
	ActionHint
	ActionDump
	ActionQuit
)

// NeedsCoord returns true for actions that target a tile
func (a Action) NeedsCoord() bool {
	return a == ActionClick || a == ActionHover || a == ActionReward
}

// Command is one parsed input line
type Command struct {
	Action Action
	Target hex.Coord
}

// bindings maps verbs to actions. Multiple verbs may point to the same Action.
var bindings = map[string]Action{
	"click": ActionClick,
	"c":     ActionClick,
	"go":    ActionClick,

	"hover": ActionHover,
	"h":     ActionHover,
	"look":  ActionHover,

	"reward": ActionReward,

	"win":  ActionWin,
	"lose": ActionLose,
	"flee": ActionLose,

	"done":    ActionComplete,
	"ok":      ActionComplete,
	"dismiss": ActionDismiss,
	"leave":   ActionDismiss,

	"map": ActionMap,
	"m":   ActionMap,

	"?":    ActionHint,
	"help": ActionHint,

	"dump": ActionDump,

	"quit": ActionQuit,
	"q":    ActionQuit,
}

// Parse turns a line like "click 3 2" into a command
func Parse(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, nil
	}
	act, ok := bindings[fields[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	cmd := Command{Action: act}
	if !act.NeedsCoord() {
		return cmd, nil
	}

	if len(fields) != 3 {
		return Command{}, fmt.Errorf("%s: want a column and a row", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("%s: column: %w", fields[0], err)
	}
	row, err := strconv.Atoi(fields[2])
	if err != nil {
		return Command{}, fmt.Errorf("%s: row: %w", fields[0], err)
	}
	cmd.Target = hex.At(col, row)
	return cmd, nil
}

// ActionName returns a human-friendly name for an action
func ActionName(a Action) string {
	switch a {
	case ActionClick:
		return "Move / Open"
	case ActionHover:
		return "Look"
	case ActionReward:
		return "Reward Combat"
	case ActionWin:
		return "Win Combat"
	case ActionLose:
		return "Lose Combat"
	case ActionComplete:
		return "Complete Encounter"
	case ActionDismiss:
		return "Dismiss Encounter"
	case ActionMap:
		return "Show Map"
	case ActionHint:
		return "Help"
	case ActionDump:
		return "Dump Map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the help text doesn't shuffle
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
