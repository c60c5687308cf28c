package systems

import (
	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw keyboard state and updates the menu input
// singleton. Must run before any system that reads menu actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// GetInput exposes the menu input singleton to scene code that layers
// keyboard navigation over non-ECS widgets.
func GetInput(ecs *ecs.ECS) *components.InputData {
	return getOrCreateInput(ecs)
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// UpdatePlayerInput polls keyboard state for every fighter entity using
// its own key bindings and appends a sample to the input history window
// used for sequence matching.
func UpdatePlayerInput(ecs *ecs.ECS) {
	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		updatePlayerInputData(input)
	})
}

func updatePlayerInputData(input *components.PlayerInputData) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, key := range input.Bindings {
		if ebiten.IsKeyPressed(key) {
			input.Current[actionID] = true
		}
	}

	input.Tick++
	input.History = append(input.History, components.InputSample{
		Held: input.Current,
		Tick: input.Tick,
	})

	// Drop samples older than the buffer window.
	cutoff := input.Tick - cfg.Battle.InputBufferTicks
	trim := 0
	for trim < len(input.History) && input.History[trim].Tick < cutoff {
		trim++
	}
	if trim > 0 {
		input.History = append(input.History[:0], input.History[trim:]...)
	}
}

// PlayerAction returns the temporal state of a player's bound action.
func PlayerAction(input *components.PlayerInputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// RefreshPlayerBindings rebinds every fighter's keys from the active
// settings. Called after the settings overlay persists a rebind so a
// running battle picks it up immediately.
func RefreshPlayerBindings(ecs *ecs.ECS) {
	s := ActiveSettings()
	if s == nil {
		return
	}
	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		input.Bindings = cfg.PlayerBindings(s, input.PlayerIndex)
	})
}
