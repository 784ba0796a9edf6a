package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/Akaiko1/code-reader/internal/config"
	apperrors "github.com/Akaiko1/code-reader/internal/errors"
)

// Kind tells a file node from a directory node.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

// FileNode is one entry of a scanned workspace. Children and Expanded are
// only meaningful for directories; a directory owns its children.
type FileNode struct {
	Kind     Kind
	Name     string
	Path     string
	Children []*FileNode
	// Expanded is view state toggled by the explorer, never persisted.
	Expanded bool
}

// IsDir reports whether n is a directory node.
func (n *FileNode) IsDir() bool {
	return n.Kind == KindDirectory
}

// Walk visits n and its descendants depth-first in children order. Returning
// false from fn skips the node's children.
func (n *FileNode) Walk(fn func(*FileNode) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *FileNode) Count() int {
	count := 0
	n.Walk(func(*FileNode) bool {
		count++
		return true
	})
	return count
}

// ScanResult is the outcome of scanning a workspace directory.
type ScanResult struct {
	RootPath  string
	NodeCount int
	Root      *FileNode
}

// FileSystemScanner scans a workspace directory into a FileNode tree.
type FileSystemScanner interface {
	ScanDirectory(path string) (*ScanResult, error)
}

// FileTreeScanner implements FileSystemScanner on the local filesystem.
type FileTreeScanner struct {
	ignore []glob.Glob
}

// NewFileTreeScanner creates a scanner that skips the config's ignore globs.
func NewFileTreeScanner(cfg *config.Config) (*FileTreeScanner, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ignore, err := cfg.IgnoreMatchers()
	if err != nil {
		return nil, err
	}
	return &FileTreeScanner{ignore: ignore}, nil
}

// Build scans path with no ignore globs beyond hidden entries.
func Build(path string) (*FileNode, error) {
	s := &FileTreeScanner{}
	return s.Build(path)
}

// ScanDirectory checks that path is a directory and builds its tree.
func (s *FileTreeScanner) ScanDirectory(path string) (*ScanResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.NewIOError("stat", path, err)
	}
	if !info.IsDir() {
		return nil, apperrors.NewNotADirectoryError(path)
	}

	root, err := s.Build(path)
	if err != nil {
		return nil, err
	}

	return &ScanResult{
		RootPath:  path,
		NodeCount: root.Count(),
		Root:      root,
	}, nil
}

// Build builds the tree rooted at path. A read failure anywhere in the walk
// aborts the build.
func (s *FileTreeScanner) Build(path string) (*FileNode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.NewIOError("stat", path, err)
	}
	return s.build(path, nodeName(path), info.IsDir())
}

func (s *FileTreeScanner) build(path, name string, isDir bool) (*FileNode, error) {
	if !isDir {
		return &FileNode{Kind: KindFile, Name: name, Path: path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, apperrors.NewIOError("read directory", path, err)
	}

	node := &FileNode{
		Kind:     KindDirectory,
		Name:     name,
		Path:     path,
		Children: make([]*FileNode, 0, len(entries)),
	}

	for _, entry := range entries {
		if s.skip(entry.Name()) {
			continue
		}
		// DirEntry.IsDir does not follow symlinks, so a link is a leaf and
		// the walk cannot loop.
		child, err := s.build(filepath.Join(path, entry.Name()), entry.Name(), entry.IsDir())
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}

	sortChildren(node.Children)
	return node, nil
}

// skip reports whether an entry name is hidden or ignored.
func (s *FileTreeScanner) skip(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, g := range s.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// sortChildren orders directories before files, then by name.
func sortChildren(children []*FileNode) {
	sort.SliceStable(children, func(i, j int) bool {
		if children[i].IsDir() != children[j].IsDir() {
			return children[i].IsDir()
		}
		return children[i].Name < children[j].Name
	})
}

// nodeName is the last path element, or the whole path when there is none.
func nodeName(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return path
	}
	return base
}
