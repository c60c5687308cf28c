package components

import (
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AnimationData plays back one action's frame list. FrameTicks counts
// update ticks spent on the current frame; the frame advances when it
// reaches the frame's Duration.
type AnimationData struct {
	Action     *fighterdata.Action
	Sheets     map[string]*ebiten.Image // Sprite sheets by action name
	Sheet      *ebiten.Image
	Cached     map[int]*ebiten.Image // Pre-calculated subimages by frame index
	FrameIndex int
	FrameTicks int
	Finished   bool // Non-looping playback reached the final frame
	Loop       bool

	// JustEntered is set for exactly one tick whenever playback lands on
	// a new frame, including frame 0 of a freshly set action. Frame
	// effects like projectile spawns key off it.
	JustEntered bool
}

// SetAction switches playback to a new action and restarts it. Setting
// the action already playing is a no-op so held states keep animating.
func (a *AnimationData) SetAction(action *fighterdata.Action, sheet *ebiten.Image, loop bool) {
	if a.Action == action {
		return
	}
	a.Action = action
	a.Sheet = sheet
	a.Cached = nil
	a.FrameIndex = 0
	a.FrameTicks = 0
	a.Finished = false
	a.Loop = loop
	a.JustEntered = true
}

// Frame returns the frame currently displayed, or nil when no action is
// playing.
func (a *AnimationData) Frame() *fighterdata.Frame {
	if a.Action == nil || a.FrameIndex >= len(a.Action.Frames) {
		return nil
	}
	return &a.Action.Frames[a.FrameIndex]
}

var Animation = donburi.NewComponentType[AnimationData]()
