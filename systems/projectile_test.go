package systems

import (
	"testing"

	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
)

func testProjectileData() *fighterdata.ProjectileData {
	return &fighterdata.ProjectileData{
		LoopFrame:      1,
		CollisionFrame: 3,
		Frames: []fighterdata.Frame{
			{Duration: 1}, // spawn
			{Duration: 1}, // flight loop
			{Duration: 1}, // flight loop
			{Duration: 1}, // impact
			{Duration: 1}, // impact
		},
	}
}

func TestAdvanceProjectileFrameFlightLoops(t *testing.T) {
	proj := &components.ProjectileData{Data: testProjectileData()}

	want := []int{1, 2, 1, 2, 1}
	for i, index := range want {
		if done := advanceProjectileFrame(proj); done {
			t.Fatalf("tick %d: flight playback reported done", i)
		}
		if proj.FrameIndex != index {
			t.Fatalf("tick %d: frame = %d, want %d", i, proj.FrameIndex, index)
		}
	}
}

func TestAdvanceProjectileFrameCollisionRunsOut(t *testing.T) {
	proj := &components.ProjectileData{Data: testProjectileData()}
	proj.Colliding = true
	proj.FrameIndex = proj.Data.CollisionFrame

	if done := advanceProjectileFrame(proj); done {
		t.Fatal("first impact frame should still play")
	}
	if proj.FrameIndex != 4 {
		t.Fatalf("frame = %d, want 4", proj.FrameIndex)
	}
	if done := advanceProjectileFrame(proj); !done {
		t.Fatal("playback past the last impact frame should report done")
	}
}

func TestAdvanceProjectileFrameRespectsDuration(t *testing.T) {
	data := testProjectileData()
	data.Frames[0].Duration = 3
	proj := &components.ProjectileData{Data: data}

	for i := 0; i < 2; i++ {
		advanceProjectileFrame(proj)
		if proj.FrameIndex != 0 {
			t.Fatalf("tick %d: frame advanced before its duration elapsed", i)
		}
	}
	advanceProjectileFrame(proj)
	if proj.FrameIndex != 1 {
		t.Fatalf("frame = %d, want 1", proj.FrameIndex)
	}
}
