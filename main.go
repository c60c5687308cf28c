package main

import (
	"flag"
	"image"
	"io/fs"
	"log"
	"os"

	"github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fonts"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/scenes"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	characterManifest = "characters/character_list.txt"
	stageManifest     = "stages/stage_list.txt"
	gameFontPath      = "fonts/champion.ttf"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(session *scenes.Session) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewTitleScene(g, session)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadFonts registers the game faces. The fonts package falls back to
// Go Regular when the content directory ships without a font file.
func loadFonts(contentFS fs.FS) {
	ttf, _ := fs.ReadFile(contentFS, gameFontPath)
	fonts.Load(ttf)
}

func main() {
	contentDir := flag.String("content", "content", "directory holding character, stage and audio data")
	flag.Parse()

	contentFS := os.DirFS(*contentDir)
	loadFonts(contentFS)

	roster, err := fighterdata.LoadCharacterRoster(contentFS, characterManifest)
	if err != nil {
		log.Fatalf("Failed to load character roster: %v", err)
	}
	stages, err := fighterdata.LoadStageList(contentFS, stageManifest)
	if err != nil {
		log.Fatalf("Failed to load stage list: %v", err)
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	settings := systems.BootSettings()

	ebiten.SetWindowTitle("Sidewalk Champion")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	systems.ApplySettings(settings)

	systems.SetContentFS(contentFS)
	systems.PreloadAllSFX()

	session := scenes.NewSession(contentFS, roster, stages)
	if err := ebiten.RunGame(NewGame(session)); err != nil {
		log.Fatal(err)
	}
}
