// Package factory spawns battle entities with their components wired up.
package factory

import (
	"log"

	"github.com/MarquisLP/Sidewalk-Champion-sub000/archetypes"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/assets"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const fighterBodyWidth = 24.0

// CreateSpace spawns the resolv space the battle's boxes live in.
func CreateSpace(e *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(e)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(cfg.C.Width, cfg.C.Height, 8, 8),
	})
	return space
}

// CreateBattle spawns the round state singleton.
func CreateBattle(e *ecs.ECS) *donburi.Entry {
	battle := archetypes.Battle.Spawn(e)
	components.Battle.SetValue(battle, components.BattleData{
		Phase:      components.PhaseIntro,
		IntroTicks: 120,
		TimerTicks: cfg.Battle.RoundSeconds * 60,
	})
	return battle
}

// CreateStage spawns the stage singleton with its art decoded.
func CreateStage(e *ecs.ECS, data *fighterdata.StageData, loader *assets.ImageLoader) *donburi.Entry {
	stage := archetypes.Stage.Spawn(e)

	sd := components.StageData{Data: data}
	if data.Background != "" {
		sd.Background = loader.LoadOrPlaceholder(data.Background, cfg.C.Width, cfg.C.Height)
	}
	if data.Parallax != "" {
		sd.Parallax = loader.LoadOrPlaceholder(data.Parallax, cfg.C.Width, cfg.C.Height)
	}
	for _, prop := range data.Props {
		img, err := loader.Load(prop.Image)
		if err != nil {
			log.Printf("factory: skipping stage prop %s: %v", prop.Image, err)
			img = nil
		}
		sd.PropImages = append(sd.PropImages, img)
	}

	components.Stage.SetValue(stage, sd)
	return stage
}

// CreateFighter spawns one player's fighter at its side of the stage.
func CreateFighter(
	e *ecs.ECS,
	playerIndex int,
	char *fighterdata.CharacterData,
	stage *fighterdata.StageData,
	settings *fighterdata.SettingsData,
	loader *assets.ImageLoader,
) *donburi.Entry {
	fighter := archetypes.Fighter.Spawn(e)

	idle := char.Action("idle")
	bodyH := 80.0
	if idle != nil {
		bodyH = float64(idle.FrameHeight)
	}

	centerX := float64(cfg.C.Width) / 2
	facing := cfg.DirectionRight
	x := centerX - cfg.Battle.SpawnDistance - fighterBodyWidth/2
	if playerIndex == 1 {
		facing = cfg.DirectionLeft
		x = centerX + cfg.Battle.SpawnDistance - fighterBodyWidth/2
	}

	groundY := float64(stage.GroundLevel)
	obj := resolv.NewObject(x, groundY-bodyH, fighterBodyWidth, bodyH, tags.ResolvFighter)
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Fighter.SetValue(fighter, components.FighterData{
		PlayerIndex: playerIndex,
		Data:        char,
		Facing:      facing,
		Stance:      fighterdata.StanceStanding,
		Meter:       0,
		ActionName:  "idle",
	})

	// Decode every action's sprite sheet up front so battle never hitches
	// on first use.
	sheets := make(map[string]*ebiten.Image, len(char.Actions))
	for i := range char.Actions {
		action := &char.Actions[i]
		sheets[action.Name] = loader.LoadOrPlaceholder(
			action.SpriteSheet,
			action.FrameWidth*len(action.Frames),
			action.FrameHeight,
		)
	}

	anim := components.Animation.Get(fighter)
	anim.Sheets = sheets
	if idle != nil {
		anim.SetAction(idle, sheets["idle"], true)
	}

	input := components.PlayerInput.Get(fighter)
	input.PlayerIndex = playerIndex
	if settings == nil {
		settings = fighterdata.DefaultSettings()
	}
	input.Bindings = cfg.PlayerBindings(settings, playerIndex)

	return fighter
}

// SpawnProjectile creates an in-flight projectile at its spawn offset
// from the owner's origin.
func SpawnProjectile(
	e *ecs.ECS,
	spawn *fighterdata.ProjectileSpawn,
	owner *components.FighterData,
	ownerObj *components.ObjectData,
	loader *assets.ImageLoader,
) *donburi.Entry {
	data := spawn.Data
	if data == nil || len(data.Frames) == 0 {
		return nil
	}

	proj := archetypes.Projectile.Spawn(e)

	originX := ownerObj.X + ownerObj.W/2
	originY := ownerObj.Y + ownerObj.H
	x := originX + float64(spawn.X)*owner.Facing - float64(data.FrameWidth)/2
	y := originY + float64(spawn.Y) - float64(data.FrameHeight)/2

	obj := resolv.NewObject(x, y, float64(data.FrameWidth), float64(data.FrameHeight), tags.ResolvProjectile)
	obj.Data = proj
	components.Object.SetValue(proj, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Projectile.SetValue(proj, components.ProjectileData{
		Data:       data,
		Sheet:      loader.LoadOrPlaceholder(data.SpriteSheet, data.FrameWidth*len(data.Frames), data.FrameHeight),
		OwnerIndex: owner.PlayerIndex,
		Facing:     owner.Facing,
	})

	return proj
}
