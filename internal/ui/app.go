package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/Akaiko1/code-reader/internal/clipboard"
	"github.com/Akaiko1/code-reader/internal/config"
	"github.com/Akaiko1/code-reader/internal/editor"
	apperrors "github.com/Akaiko1/code-reader/internal/errors"
	"github.com/Akaiko1/code-reader/internal/explorer"
	"github.com/Akaiko1/code-reader/internal/log"
	"github.com/Akaiko1/code-reader/internal/renderer"
	"github.com/Akaiko1/code-reader/internal/scanner"
	"github.com/Akaiko1/code-reader/internal/theme"
)

const (
	appID    = "io.github.akaiko1.code-reader"
	appTitle = "Code Reader"

	// Messages
	msgNoWorkspace = "No workspace opened"
	msgNoData      = "Please open a folder first."
	msgNoActive    = "No file is open."
)

// CodeReaderApp is the application shell: window, menus, sidebar and editor.
// All state is touched only from Fyne callbacks on the UI goroutine.
type CodeReaderApp struct {
	// Core components
	app    fyne.App
	window fyne.Window
	config *config.Config
	theme  *theme.Theme

	// Services
	explorer        *explorer.FileExplorer
	editor          *editor.EditorState
	treeRenderer    renderer.TreeRenderer
	visibleRenderer renderer.TreeRenderer
	copier          clipboard.Copier
	picker          FolderPicker

	// UI components
	view        *EditorView
	content     *fyne.Container
	sidebarBody *fyne.Container
	sidebar     fyne.CanvasObject
	statusLabel *widget.Label

	// Shell state
	sidebarWidth  float32
	workspacePath string
}

// NewCodeReaderApp creates the application with a desktop Fyne driver.
func NewCodeReaderApp(cfg *config.Config) (*CodeReaderApp, error) {
	return newCodeReaderApp(app.NewWithID(appID), cfg)
}

func newCodeReaderApp(fyneApp fyne.App, cfg *config.Config) (*CodeReaderApp, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	fileScanner, err := scanner.NewFileTreeScanner(cfg)
	if err != nil {
		return nil, err
	}

	th := theme.Resolve(cfg.Theme)
	fyneApp.Settings().SetTheme(th.Fyne())

	window := fyneApp.NewWindow(appTitle)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	state := editor.NewEditorState()
	a := &CodeReaderApp{
		app:             fyneApp,
		window:          window,
		config:          cfg,
		theme:           th,
		explorer:        explorer.NewFileExplorer(fileScanner, state),
		editor:          state,
		treeRenderer:    &renderer.StandardTreeRenderer{},
		visibleRenderer: &renderer.StandardTreeRenderer{OnlyExpanded: true},
		copier:          clipboard.NewFyneCopier(fyneApp.Clipboard()),
		view:            NewEditorView(state),
		statusLabel:     widget.NewLabel(msgNoWorkspace),
		sidebarWidth:    config.ClampSidebarWidth(cfg.SidebarWidth),
	}
	a.picker = &dialogFolderPicker{window: window, onError: a.showError}

	a.explorer.OnOpened = func(string) { a.onEditorChanged() }
	// the explorer logs its own failures
	a.explorer.OnOpenFailed = func(_ string, err error) {
		dialog.ShowError(fmt.Errorf("Open File Error: %w", err), a.window)
	}
	a.view.OnChanged = a.onEditorChanged

	window.SetContent(a.createMainContent())
	window.SetMainMenu(a.createMainMenu())
	a.enableDragDrop()
	return a, nil
}

// Run shows the window and blocks until the application quits.
func (a *CodeReaderApp) Run() {
	a.window.ShowAndRun()
}

// createMainContent lays out the sidebar, the editor and the status line.
func (a *CodeReaderApp) createMainContent() fyne.CanvasObject {
	title := widget.NewLabel("Files")
	title.TextStyle.Bold = true

	openBtn := widget.NewButton("Open Folder", a.handleOpenFolder)
	a.sidebarBody = container.NewStack(container.NewVBox(widget.NewLabel(msgNoWorkspace), openBtn))

	a.sidebar = container.NewStack(
		canvas.NewRectangle(a.theme.SidebarBackground),
		container.NewBorder(container.NewVBox(title, widget.NewSeparator()), nil, nil, nil, a.sidebarBody),
	)

	a.content = container.NewStack()
	a.layoutContent()

	return container.NewBorder(nil, a.statusLabel, nil, nil, a.content)
}

// layoutContent places the editor alone or next to the sidebar.
func (a *CodeReaderApp) layoutContent() {
	if a.sidebarWidth <= 0 {
		a.content.Objects = []fyne.CanvasObject{a.view.Object()}
		a.content.Refresh()
		return
	}

	split := container.NewHSplit(a.sidebar, a.view.Object())
	width := a.window.Canvas().Size().Width
	if width <= 0 {
		width = a.config.WindowWidth
	}
	offset := float64(a.sidebarWidth / width)
	if offset > 0.5 {
		offset = 0.5
	}
	split.SetOffset(offset)

	a.content.Objects = []fyne.CanvasObject{split}
	a.content.Refresh()
}

func (a *CodeReaderApp) createMainMenu() *fyne.MainMenu {
	saveShortcut := &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}
	a.window.Canvas().AddShortcut(saveShortcut, func(fyne.Shortcut) { a.handleSave() })

	openItem := fyne.NewMenuItem("Open Folder...", a.handleOpenFolder)
	saveItem := fyne.NewMenuItem("Save", a.handleSave)
	saveItem.Shortcut = saveShortcut
	exitItem := fyne.NewMenuItem("Exit", a.app.Quit)
	exitItem.IsQuit = true

	file := fyne.NewMenu("File", openItem, saveItem, fyne.NewMenuItemSeparator(), exitItem)
	edit := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Copy File Tree", a.handleCopyTree),
		fyne.NewMenuItem("Copy Visible Tree", a.handleCopyVisibleTree),
		fyne.NewMenuItem("Copy Path", a.handleCopyPath),
	)
	view := fyne.NewMenu("View", fyne.NewMenuItem("Toggle File Explorer", a.ToggleSidebar))

	return fyne.NewMainMenu(file, edit, view)
}

// OpenWorkspace scans path and shows it in the sidebar. On error nothing
// changes.
func (a *CodeReaderApp) OpenWorkspace(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return apperrors.NewIOError("stat", path, err)
	}
	if !info.IsDir() {
		return apperrors.NewNotADirectoryError(path)
	}
	if err := a.explorer.SetRoot(path); err != nil {
		return err
	}

	a.workspacePath = path
	a.sidebarBody.Objects = []fyne.CanvasObject{a.explorer.Widget()}
	a.sidebarBody.Refresh()
	a.window.SetTitle(fmt.Sprintf("%s - %s", appTitle, a.explorer.Root().Name))
	a.statusLabel.SetText(fmt.Sprintf("Opened %d items from: %s", a.explorer.Root().Count(), path))
	return nil
}

// WorkspacePath returns the open workspace, or "" if none.
func (a *CodeReaderApp) WorkspacePath() string {
	return a.workspacePath
}

// SidebarWidth returns the current sidebar width; 0 means hidden.
func (a *CodeReaderApp) SidebarWidth() float32 {
	return a.sidebarWidth
}

// ToggleSidebar hides the file explorer or restores it to its default width.
func (a *CodeReaderApp) ToggleSidebar() {
	if a.sidebarWidth > 0 {
		a.sidebarWidth = 0
	} else {
		a.sidebarWidth = config.ClampSidebarWidth(a.config.SidebarWidth)
	}
	a.layoutContent()
}

// OpenFile opens path in a tab and reports failures to the user.
func (a *CodeReaderApp) OpenFile(path string) {
	if err := a.editor.Open(path); err != nil {
		a.showError("Open File Error", err)
		return
	}
	a.onEditorChanged()
}

// onEditorChanged syncs the views after tabs were opened, closed or switched.
func (a *CodeReaderApp) onEditorChanged() {
	a.view.Refresh()
	a.explorer.Refresh()

	buf := a.editor.ActiveBuffer()
	if buf == nil {
		a.statusLabel.SetText(msgNoActive)
		return
	}
	syntax := buf.Syntax()
	if syntax == "" {
		syntax = "Plain Text"
	}
	a.statusLabel.SetText(fmt.Sprintf("%s | %s | %s", buf.Path(), syntax, humanize.Bytes(uint64(buf.Size()))))
}

// handleOpenFolder asks for a folder and opens it as the workspace.
func (a *CodeReaderApp) handleOpenFolder() {
	a.picker.PickFolder(func(path string) {
		if err := a.OpenWorkspace(path); err != nil {
			a.showError("Open Folder Error", err)
		}
	})
}

// handleSave writes the active buffer to disk.
func (a *CodeReaderApp) handleSave() {
	buf := a.editor.ActiveBuffer()
	if buf == nil {
		return
	}
	if err := a.editor.SaveActive(); err != nil {
		a.showError("Save Error", err)
		return
	}
	log.WithPath(buf.Path()).Info("saved")
	a.view.Refresh()
	a.statusLabel.SetText(fmt.Sprintf("Saved %s (%s)", buf.Name(), humanize.Bytes(uint64(buf.Size()))))
}

// handleCopyTree copies the whole workspace tree as text.
func (a *CodeReaderApp) handleCopyTree() {
	a.copyTree(clipboard.TargetTree, a.treeRenderer)
}

// handleCopyVisibleTree copies only the branches open in the explorer.
func (a *CodeReaderApp) handleCopyVisibleTree() {
	a.copyTree(clipboard.TargetVisibleTree, a.visibleRenderer)
}

func (a *CodeReaderApp) copyTree(target clipboard.Target, r renderer.TreeRenderer) {
	root := a.explorer.Root()
	if root == nil {
		dialog.ShowInformation("No Data", msgNoData, a.window)
		return
	}
	a.copyText(target, r.RenderTree(root))
}

// handleCopyPath copies the active file's path.
func (a *CodeReaderApp) handleCopyPath() {
	path, ok := a.editor.Active()
	if !ok {
		dialog.ShowInformation("No Data", msgNoActive, a.window)
		return
	}
	a.copyText(clipboard.TargetPath, path)
}

func (a *CodeReaderApp) copyText(target clipboard.Target, text string) {
	if err := a.copier.Copy(target, text); err != nil {
		a.showError("Clipboard Error", err)
		return
	}
	a.statusLabel.SetText(target.Copied())
}

// showError logs err and shows it in a dialog.
func (a *CodeReaderApp) showError(title string, err error) {
	log.WithError(err).Error(title)
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), a.window)
}

// enableDragDrop opens dropped folders as the workspace and dropped files in
// a tab.
func (a *CodeReaderApp) enableDragDrop() {
	a.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) == 0 {
			return
		}
		uri := uris[0] // Take first dropped item
		if uri.Scheme() != "file" {
			a.showError("Drop Error", fmt.Errorf("invalid file path %q", uri.String()))
			return
		}
		a.openDropped(filepath.Clean(uri.Path()))
	})
}

func (a *CodeReaderApp) openDropped(path string) {
	info, err := os.Stat(path)
	if err != nil {
		a.showError("Drop Error", apperrors.NewIOError("stat", path, err))
		return
	}
	if info.IsDir() {
		if err := a.OpenWorkspace(path); err != nil {
			a.showError("Open Folder Error", err)
		}
		return
	}
	a.OpenFile(path)
}
