package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// FolderPicker asks the user for a directory. onPicked is not called when the
// user cancels.
type FolderPicker interface {
	PickFolder(onPicked func(path string))
}

// dialogFolderPicker shows Fyne's folder-open dialog over a window.
type dialogFolderPicker struct {
	window  fyne.Window
	onError func(title string, err error)
}

func (p *dialogFolderPicker) PickFolder(onPicked func(path string)) {
	folderDialog := dialog.NewFolderOpen(func(folder fyne.ListableURI, err error) {
		if err != nil {
			p.onError("Folder Selection Error", err)
			return
		}
		if folder == nil {
			return // User cancelled
		}
		onPicked(folder.Path())
	}, p.window)
	folderDialog.SetConfirmText("Open")
	folderDialog.Show()
}
