// Package explorer shows a scanned workspace as a collapsible tree and opens
// the files the user picks in it.
package explorer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/Akaiko1/code-reader/internal/log"
	"github.com/Akaiko1/code-reader/internal/scanner"
)

const (
	folderIcon = "📁"
	fileIcon   = "📄"
)

// Opener is the part of the editor the explorer drives.
type Opener interface {
	IsOpen(path string) bool
	Open(path string) error
}

// FileExplorer owns the workspace tree. Tree node IDs are absolute paths;
// the empty ID is the invisible parent of the root.
type FileExplorer struct {
	scanner scanner.FileSystemScanner
	opener  Opener

	root  *scanner.FileNode
	index map[string]*scanner.FileNode

	tree *widget.Tree

	// OnOpened runs after a file node was opened successfully.
	OnOpened func(path string)
	// OnOpenFailed runs when opening a file node failed.
	OnOpenFailed func(path string, err error)
}

// NewFileExplorer creates an explorer with no workspace.
func NewFileExplorer(s scanner.FileSystemScanner, opener Opener) *FileExplorer {
	return &FileExplorer{
		scanner: s,
		opener:  opener,
		index:   make(map[string]*scanner.FileNode),
	}
}

// SetRoot replaces the workspace with a fresh scan of path. On error the
// previous workspace stays in place.
func (e *FileExplorer) SetRoot(path string) error {
	result, err := e.scanner.ScanDirectory(path)
	if err != nil {
		return err
	}

	root := result.Root
	root.Expanded = true
	index := make(map[string]*scanner.FileNode, result.NodeCount)
	root.Walk(func(n *scanner.FileNode) bool {
		index[n.Path] = n
		return true
	})

	e.root = root
	e.index = index
	log.WithPath(result.RootPath).Infof("workspace scanned, %d entries", result.NodeCount)

	if e.tree != nil {
		e.tree.CloseAllBranches()
		e.tree.OpenBranch(root.Path)
		e.tree.Refresh()
	}
	return nil
}

// Root returns the workspace root, or nil before SetRoot succeeded.
func (e *FileExplorer) Root() *scanner.FileNode {
	return e.root
}

// Node looks up a node by path.
func (e *FileExplorer) Node(id string) *scanner.FileNode {
	return e.index[id]
}

// ChildIDs lists the children of id in display order.
func (e *FileExplorer) ChildIDs(id string) []string {
	if id == "" {
		if e.root == nil {
			return nil
		}
		return []string{e.root.Path}
	}
	node := e.index[id]
	if node == nil {
		return nil
	}
	ids := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		ids = append(ids, child.Path)
	}
	return ids
}

// IsBranch reports whether id is a directory. Empty directories are still
// branches so they render as headers.
func (e *FileExplorer) IsBranch(id string) bool {
	if id == "" {
		return true
	}
	node := e.index[id]
	return node != nil && node.IsDir()
}

// Label is the text shown for id.
func (e *FileExplorer) Label(id string) string {
	node := e.index[id]
	if node == nil {
		return ""
	}
	if node.IsDir() {
		return folderIcon + " " + node.Name
	}
	return fileIcon + " " + node.Name
}

// SetExpanded records the open state of a directory header.
func (e *FileExplorer) SetExpanded(id string, expanded bool) {
	if node := e.index[id]; node != nil && node.IsDir() {
		node.Expanded = expanded
	}
}

// Activate handles a click on id: files are opened in the editor, directories
// flip their expanded state. A failed open is logged and returned; the
// explorer keeps going.
func (e *FileExplorer) Activate(id string) error {
	node := e.index[id]
	if node == nil {
		return nil
	}

	if node.IsDir() {
		expanded := !node.Expanded
		e.SetExpanded(id, expanded)
		if e.tree != nil {
			if expanded {
				e.tree.OpenBranch(id)
			} else {
				e.tree.CloseBranch(id)
			}
		}
		return nil
	}

	if err := e.opener.Open(node.Path); err != nil {
		log.WithPath(node.Path).WithError(err).Error("failed to open file")
		if e.OnOpenFailed != nil {
			e.OnOpenFailed(node.Path, err)
		}
		return err
	}
	if e.OnOpened != nil {
		e.OnOpened(node.Path)
	}
	return nil
}

// Widget returns the tree widget, creating it on first use.
func (e *FileExplorer) Widget() *widget.Tree {
	if e.tree != nil {
		return e.tree
	}

	e.tree = widget.NewTree(e.ChildIDs, e.IsBranch, e.createNode, e.updateNode)
	e.tree.OnBranchOpened = func(id widget.TreeNodeID) { e.SetExpanded(id, true) }
	e.tree.OnBranchClosed = func(id widget.TreeNodeID) { e.SetExpanded(id, false) }
	e.tree.OnSelected = func(id widget.TreeNodeID) {
		// selection is only used as a click; clear it so the same row can
		// be clicked again
		defer e.tree.Unselect(id)
		_ = e.Activate(id)
		e.tree.RefreshItem(id)
	}

	if e.root != nil {
		e.tree.OpenBranch(e.root.Path)
	}
	return e.tree
}

// Refresh redraws the tree, e.g. after tabs were opened or closed.
func (e *FileExplorer) Refresh() {
	if e.tree != nil {
		e.tree.Refresh()
	}
}

func (e *FileExplorer) createNode(branch bool) fyne.CanvasObject {
	icon := fileIcon
	if branch {
		icon = folderIcon
	}
	return widget.NewLabel(icon + " Item")
}

func (e *FileExplorer) updateNode(id widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
	label, ok := obj.(*widget.Label)
	if !ok {
		return
	}
	label.TextStyle.Bold = !branch && e.opener.IsOpen(id)
	label.SetText(e.Label(id))
}
