package editor

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/gabriel-vasile/mimetype"

	apperrors "github.com/Akaiko1/code-reader/internal/errors"
)

// Buffer holds the text of one open file.
type Buffer struct {
	content  string
	path     string
	syntax   string // resolved language name, "" if unknown
	modified bool
}

// NewBuffer creates a buffer for path holding content. With a non-empty
// extension the syntax is looked up by extension, otherwise it is guessed
// from the content (shebang lines and the like). An unresolved syntax leaves
// Syntax empty.
func NewBuffer(content, path, extension string) *Buffer {
	return &Buffer{
		content: content,
		path:    path,
		syntax:  resolveSyntax(content, extension),
	}
}

// LoadBuffer reads the file at path into a new buffer.
func LoadBuffer(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewIOError("read", path, err)
	}
	if !utf8.Valid(data) {
		return nil, apperrors.NewEncodingError(path, mimetype.Detect(data).String())
	}
	return NewBuffer(string(data), path, extensionOf(path)), nil
}

func resolveSyntax(content, extension string) string {
	if extension != "" {
		if lexer := lexers.Match("file." + extension); lexer != nil {
			return lexer.Config().Name
		}
		return ""
	}
	firstLine, _, _ := strings.Cut(content, "\n")
	if lexer := lexers.Analyse(firstLine); lexer != nil {
		return lexer.Config().Name
	}
	return ""
}

// extensionOf returns the path's suffix without the dot.
func extensionOf(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

func (b *Buffer) Content() string { return b.content }
func (b *Buffer) Path() string    { return b.path }
func (b *Buffer) Syntax() string  { return b.syntax }
func (b *Buffer) Modified() bool  { return b.modified }

// Name is the file's base name, used as the tab label.
func (b *Buffer) Name() string {
	return filepath.Base(b.path)
}

// Size is the content length in bytes.
func (b *Buffer) Size() int {
	return len(b.content)
}

// SetContent replaces the text with an edited version. It marks the buffer
// modified only when the text actually changed and reports whether it did.
func (b *Buffer) SetContent(text string) bool {
	if text == b.content {
		return false
	}
	b.content = text
	b.modified = true
	return true
}

// Save writes the content back to the file. A failed write may leave the file
// partially written; the buffer stays modified in that case.
func (b *Buffer) Save() error {
	if err := os.WriteFile(b.path, []byte(b.content), 0o644); err != nil {
		return apperrors.NewIOError("write", b.path, err)
	}
	b.modified = false
	return nil
}
