package ui

import (
	"bytes"
	"image/color"
	"log"

	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// StageSelectUI is the stage list panel. The list itself is mouse
// driven; the scene layers keyboard navigation on top through Highlight
// and Confirm.
type StageSelectUI struct {
	UI *ebitenui.UI

	OnChoose func(index int)
	OnGoBack func()

	stages      []*fighterdata.StageData
	highlighted int

	stageButtons []*widget.Button
	nameLabel    *widget.Label
	subLabel     *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewStageSelectUI(stages []*fighterdata.StageData, onChoose func(index int), onGoBack func()) *StageSelectUI {
	ui := &StageSelectUI{
		OnChoose: onChoose,
		OnGoBack: onGoBack,
		stages:   stages,
	}
	ui.loadFonts()
	ui.buildUI()
	ui.SetHighlight(0)
	return ui
}

func (ui *StageSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 11}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 9}
}

func (ui *StageSelectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.StageSelect.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				Padding:            &widget.Insets{Left: 12},
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SELECT STAGE", &ui.titleFace, &widget.LabelColor{
			Idle: cfg.StageSelect.NameColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	for i, stage := range ui.stages {
		index := i
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(130, 18)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:    image.NewNineSliceColor(color.RGBA{40, 60, 55, 255}),
				Hover:   image.NewNineSliceColor(color.RGBA{60, 90, 80, 255}),
				Pressed: image.NewNineSliceColor(color.RGBA{30, 50, 45, 255}),
			}),
			widget.ButtonOpts.Text(stage.Name, &ui.normalFace, &widget.ButtonTextColor{
				Idle:  color.RGBA{255, 255, 255, 255},
				Hover: color.RGBA{255, 230, 160, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				ui.SetHighlight(index)
				if ui.OnChoose != nil {
					ui.OnChoose(index)
				}
			}),
		)
		ui.stageButtons = append(ui.stageButtons, btn)
		contentContainer.AddChild(btn)
	}

	ui.nameLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 230, 160, 255},
		}),
	)
	contentContainer.AddChild(ui.nameLabel)

	ui.subLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: cfg.StageSelect.SubtitleColor,
		}),
	)
	contentContainer.AddChild(ui.subLabel)

	backBtn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(130, 18)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{70, 45, 45, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{100, 60, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{55, 35, 35, 255}),
		}),
		widget.ButtonOpts.Text("Back", &ui.normalFace, &widget.ButtonTextColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnGoBack != nil {
				ui.OnGoBack()
			}
		}),
	)
	contentContainer.AddChild(backBtn)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// SetHighlight moves the keyboard highlight and refreshes the detail
// labels.
func (ui *StageSelectUI) SetHighlight(index int) {
	if len(ui.stages) == 0 {
		return
	}
	if index < 0 {
		index = len(ui.stages) - 1
	}
	if index >= len(ui.stages) {
		index = 0
	}
	ui.highlighted = index

	stage := ui.stages[index]
	ui.nameLabel.Label = stage.Name
	ui.subLabel.Label = stage.Subtitle
}

// Highlighted returns the index the keyboard highlight sits on.
func (ui *StageSelectUI) Highlighted() int {
	return ui.highlighted
}

func (ui *StageSelectUI) Update() {
	ui.UI.Update()
}
