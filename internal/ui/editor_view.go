package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Akaiko1/code-reader/internal/editor"
)

const (
	msgNoFileOpen  = "No file open. Select a file from the explorer to get started."
	modifiedMarker = " ●"
)

// EditorView draws the tab bar and the active buffer of an EditorState. It
// rebuilds the tab bar from the state on every Refresh.
type EditorView struct {
	state *editor.EditorState

	tabs  *fyne.Container
	body  *fyne.Container
	entry *widget.Entry
	empty fyne.CanvasObject
	root  fyne.CanvasObject

	// shown is the path whose text is loaded in entry.
	shown string

	// OnChanged runs after the user selected or closed a tab.
	OnChanged func()
}

// NewEditorView creates the view for state.
func NewEditorView(state *editor.EditorState) *EditorView {
	v := &EditorView{state: state}

	v.entry = widget.NewMultiLineEntry()
	v.entry.TextStyle = fyne.TextStyle{Monospace: true}
	v.entry.Wrapping = fyne.TextWrapOff

	v.empty = container.NewCenter(widget.NewLabel(msgNoFileOpen))
	v.tabs = container.NewHBox()
	v.body = container.NewStack(v.empty)

	top := container.NewVBox(container.NewHScroll(v.tabs), widget.NewSeparator())
	v.root = container.NewBorder(top, nil, nil, nil, v.body)

	v.Refresh()
	return v
}

// Object is the canvas object to place in the window.
func (v *EditorView) Object() fyne.CanvasObject {
	return v.root
}

// Refresh redraws the tabs and the active buffer from the state.
func (v *EditorView) Refresh() {
	v.renderTabs()
	v.renderActive()
}

func (v *EditorView) renderTabs() {
	active, _ := v.state.Active()

	tabs := make([]fyne.CanvasObject, 0, v.state.Count())
	for _, path := range v.state.Tabs() {
		buf := v.state.Buffer(path)
		if buf == nil {
			continue
		}

		selectBtn := widget.NewButton(tabLabel(buf), func() { v.selectTab(path) })
		selectBtn.Importance = widget.LowImportance
		if path == active {
			selectBtn.Importance = widget.HighImportance
		}

		closeBtn := widget.NewButtonWithIcon("", theme.CancelIcon(), func() { v.closeTab(path) })
		closeBtn.Importance = widget.LowImportance

		tabs = append(tabs, container.NewHBox(selectBtn, closeBtn))
	}

	v.tabs.Objects = tabs
	v.tabs.Refresh()
}

func (v *EditorView) renderActive() {
	buf := v.state.ActiveBuffer()
	if buf == nil {
		v.shown = ""
		v.body.Objects = []fyne.CanvasObject{v.empty}
		v.body.Refresh()
		return
	}

	if v.shown != buf.Path() || v.entry.Text != buf.Content() {
		v.entry.OnChanged = nil
		v.entry.SetText(buf.Content())
		v.shown = buf.Path()
	}
	v.entry.OnChanged = v.onEdited

	v.body.Objects = []fyne.CanvasObject{v.entry}
	v.body.Refresh()
}

// onEdited copies the entry text into the active buffer.
func (v *EditorView) onEdited(text string) {
	buf := v.state.ActiveBuffer()
	if buf == nil || buf.Path() != v.shown {
		return
	}
	wasModified := buf.Modified()
	if buf.SetContent(text) && !wasModified {
		v.renderTabs()
	}
}

func (v *EditorView) selectTab(path string) {
	if v.state.SetActive(path) {
		v.Refresh()
		v.notify()
	}
}

func (v *EditorView) closeTab(path string) {
	v.state.Close(path)
	v.Refresh()
	v.notify()
}

func (v *EditorView) notify() {
	if v.OnChanged != nil {
		v.OnChanged()
	}
}

func tabLabel(buf *editor.Buffer) string {
	if buf.Modified() {
		return buf.Name() + modifiedMarker
	}
	return buf.Name()
}
