package systems

import (
	"sort"

	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
)

// stepActions resolves one input step's button names to action IDs.
// Unknown names make the step unmatchable rather than panicking; the
// loaders reject them so this only guards hand-built data in tests.
func stepActions(step []string) ([]cfg.ActionID, bool) {
	ids := make([]cfg.ActionID, 0, len(step))
	for _, name := range step {
		id, ok := cfg.ButtonActionIDs[name]
		if !ok {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// heldRelative reports whether an action was held in a sample, with
// forward/back interpreted relative to the fighter's facing. A fighter
// facing left presses the back key to move toward the opponent, so the
// two directions swap.
func heldRelative(sample *components.InputSample, id cfg.ActionID, facing float64) bool {
	if facing == cfg.DirectionLeft {
		switch id {
		case cfg.ActionForward:
			id = cfg.ActionBack
		case cfg.ActionBack:
			id = cfg.ActionForward
		}
	}
	return sample.Held[id]
}

func stepHeld(sample *components.InputSample, ids []cfg.ActionID, facing float64) bool {
	for _, id := range ids {
		if !heldRelative(sample, id, facing) {
			return false
		}
	}
	return true
}

// MatchSteps reports whether an action's input steps were completed in
// order within the history window, with the final step landing on the
// newest sample. Consecutive steps may be at most gap ticks apart.
func MatchSteps(history []components.InputSample, steps [][]string, gap int, facing float64) bool {
	if len(steps) == 0 || len(history) == 0 {
		return false
	}

	// The last step must be satisfied right now, with at least one of
	// its buttons freshly pressed this tick. Without the freshness check
	// a held punch button would re-trigger the action every tick.
	last := &history[len(history)-1]
	ids, ok := stepActions(steps[len(steps)-1])
	if !ok || !stepHeld(last, ids, facing) {
		return false
	}
	if len(history) >= 2 {
		prev := &history[len(history)-2]
		fresh := false
		for _, id := range ids {
			if !heldRelative(prev, id, facing) {
				fresh = true
				break
			}
		}
		if !fresh {
			return false
		}
	}

	deadline := last.Tick
	scan := len(history) - 1
	for s := len(steps) - 2; s >= 0; s-- {
		ids, ok := stepActions(steps[s])
		if !ok {
			return false
		}
		found := false
		for scan--; scan >= 0; scan-- {
			sample := &history[scan]
			if sample.Tick >= deadline {
				continue
			}
			if deadline-sample.Tick > gap {
				break
			}
			if stepHeld(sample, ids, facing) {
				deadline = sample.Tick
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FindTriggeredAction returns the highest-priority non-default action
// whose requirements are met this tick, or nil. Ties keep the order the
// actions appear in the character file.
func FindTriggeredAction(
	char *fighterdata.CharacterData,
	input *components.PlayerInputData,
	fighter *components.FighterData,
	distance float64,
) *fighterdata.Action {
	type candidate struct {
		action *fighterdata.Action
		order  int
	}

	var candidates []candidate
	for i := range char.Actions {
		action := &char.Actions[i]
		if _, isDefault := char.DefaultActions[action.Name]; isDefault {
			continue
		}
		if len(action.InputSteps) == 0 {
			continue
		}
		if action.Stance != fighterdata.StanceAny && action.Stance != fighter.Stance {
			continue
		}
		if action.Proximity > 0 && distance > float64(action.Proximity) {
			continue
		}
		if action.MeterCost > fighter.Meter {
			continue
		}
		if !MatchSteps(input.History, action.InputSteps, cfg.Battle.StepGapTicks, fighter.Facing) {
			continue
		}
		candidates = append(candidates, candidate{action: action, order: i})
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].action.InputPriority != candidates[b].action.InputPriority {
			return candidates[a].action.InputPriority > candidates[b].action.InputPriority
		}
		return candidates[a].order < candidates[b].order
	})
	return candidates[0].action
}
