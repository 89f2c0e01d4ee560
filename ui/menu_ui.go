package ui

import (
	"bytes"
	"log"

	"github.com/automoto/duality/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelEntry is one playable level offered by the menu.
type LevelEntry struct {
	Name  string
	Title string
}

type menuEntry struct {
	level  string // empty for Quit
	label  string
	button *widget.Button
}

// MenuUI is the main menu: one button per level and a Quit button.
// Keyboard selection is driven through Move and Activate so held keys from a
// previous scene cannot press a button.
type MenuUI struct {
	UI *ebitenui.UI

	OnPlay func(level string)
	OnQuit func()

	entries  []*menuEntry
	selected int

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewMenuUI(levels []LevelEntry, onPlay func(level string), onQuit func()) *MenuUI {
	ui := &MenuUI{
		OnPlay: onPlay,
		OnQuit: onQuit,
	}
	ui.loadFonts()
	ui.buildUI(levels)
	ui.Select(0)
	return ui
}

func (ui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: config.Menu.TitleFontSize}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: config.Menu.FontSize}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: config.Menu.FontSize * 0.7}
}

func (ui *MenuUI) buildUI(levels []LevelEntry) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(config.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(config.Menu.Title, &ui.titleFace, &widget.LabelColor{
			Idle: config.Menu.TitleColor,
		}),
	))

	for _, lvl := range levels {
		entry := &menuEntry{level: lvl.Name, label: config.Menu.PlayLabel + ": " + lvl.Title}
		entry.button = ui.newButton(entry)
		ui.entries = append(ui.entries, entry)
		contentContainer.AddChild(entry.button)
	}

	quit := &menuEntry{label: config.Menu.QuitLabel}
	quit.button = ui.newButton(quit)
	ui.entries = append(ui.entries, quit)
	contentContainer.AddChild(quit.button)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(config.Menu.Hint, &ui.smallFace, &widget.LabelColor{
			Idle: config.Menu.TextColor,
		}),
	))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *MenuUI) newButton(entry *menuEntry) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(config.Menu.ButtonWidth, config.Menu.ButtonHeight)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(config.Menu.ButtonIdle),
			Hover:    image.NewNineSliceColor(config.Menu.ButtonHover),
			Pressed:  image.NewNineSliceColor(config.Menu.ButtonPressed),
			Disabled: image.NewNineSliceColor(config.Menu.ButtonPressed),
		}),
		widget.ButtonOpts.Text(entry.label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     config.Menu.TextColor,
			Hover:    config.Menu.TitleColor,
			Pressed:  config.Menu.TitleColor,
			Disabled: config.Menu.TextColor,
		}),
		widget.ButtonOpts.DisableDefaultKeys(),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.activate(entry)
		}),
	)
}

// MarkCompleted relabels a level's button once it has been finished.
func (ui *MenuUI) MarkCompleted(level string) {
	for _, e := range ui.entries {
		if e.level == level && e.level != "" {
			e.button.SetText(e.label + config.Menu.AgainSuffix)
		}
	}
}

// Select highlights entry i, wrapping around both ends.
func (ui *MenuUI) Select(i int) {
	n := len(ui.entries)
	if n == 0 {
		return
	}
	i = ((i % n) + n) % n
	ui.entries[ui.selected].button.Focus(false)
	ui.selected = i
	ui.entries[i].button.Focus(true)
}

// Move shifts the highlight by delta entries.
func (ui *MenuUI) Move(delta int) {
	ui.Select(ui.selected + delta)
}

// Activate runs the highlighted entry's action.
func (ui *MenuUI) Activate() {
	if len(ui.entries) == 0 {
		return
	}
	ui.activate(ui.entries[ui.selected])
}

func (ui *MenuUI) activate(e *menuEntry) {
	if e.level == "" {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
		return
	}
	if ui.OnPlay != nil {
		ui.OnPlay(e.level)
	}
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}

func (ui *MenuUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
