package components

import "github.com/yohamta/donburi"

// TitleOption represents the available title screen selections
type TitleOption int

const (
	TitleStart TitleOption = iota
	TitleSettings
	TitleExit
)

// MenuData stores the current state of the title screen menu
type MenuData struct {
	SelectedIndex int
	Options       []TitleOption
}

// Menu is the component type for title screen state
var Menu = donburi.NewComponentType[MenuData]()
