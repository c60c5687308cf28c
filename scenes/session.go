// Package scenes wires the game's screens together. Each scene owns its
// own ECS world, built lazily on first update, and hands control to the
// next scene through the SceneChanger.
package scenes

import (
	"io/fs"

	"github.com/MarquisLP/Sidewalk-Champion-sub000/assets"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Session carries the loaded game content and the players' choices from
// screen to screen. One Session lives for the whole program run.
type Session struct {
	ContentFS fs.FS
	Images    *assets.ImageLoader

	Roster []*fighterdata.CharacterData
	Stages []*fighterdata.StageData

	// Picked carries each player's roster index out of character select;
	// StageIndex the chosen stage out of stage select.
	Picked     [2]int
	StageIndex int
}

// NewSession builds a session around loaded content.
func NewSession(contentFS fs.FS, roster []*fighterdata.CharacterData, stages []*fighterdata.StageData) *Session {
	return &Session{
		ContentFS: contentFS,
		Images:    assets.NewImageLoader(contentFS),
		Roster:    roster,
		Stages:    stages,
	}
}

// Character returns a player's chosen character.
func (s *Session) Character(playerIndex int) *fighterdata.CharacterData {
	return s.Roster[s.Picked[playerIndex]]
}

// Stage returns the chosen stage.
func (s *Session) Stage() *fighterdata.StageData {
	return s.Stages[s.StageIndex]
}
