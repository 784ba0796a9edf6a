package editor

import "github.com/Akaiko1/code-reader/internal/log"

// EditorState tracks the open buffers, their tab order and the active one.
// It has no UI dependency. Every mutation happens on the UI goroutine.
type EditorState struct {
	buffers  map[string]*Buffer
	tabOrder []string
	active   string // "" when nothing is active
}

// NewEditorState creates an empty state.
func NewEditorState() *EditorState {
	return &EditorState{buffers: make(map[string]*Buffer)}
}

// IsOpen reports whether path has a buffer.
func (s *EditorState) IsOpen(path string) bool {
	_, ok := s.buffers[path]
	return ok
}

// Open makes path the active buffer, loading it from disk first if it is not
// open yet. An already open buffer is not reloaded, so unsaved edits survive
// and external changes are not picked up. On error nothing changes.
func (s *EditorState) Open(path string) error {
	if _, ok := s.buffers[path]; !ok {
		buf, err := LoadBuffer(path)
		if err != nil {
			return err
		}
		s.buffers[path] = buf
		s.tabOrder = append(s.tabOrder, path)
		log.WithPath(path).Debugf("opened buffer (syntax %q)", buf.Syntax())
	}
	s.active = path
	return nil
}

// Close drops the buffer for path, discarding unsaved edits. Closing the
// active buffer activates the last remaining tab.
func (s *EditorState) Close(path string) {
	delete(s.buffers, path)

	kept := s.tabOrder[:0]
	for _, p := range s.tabOrder {
		if p != path {
			kept = append(kept, p)
		}
	}
	s.tabOrder = kept

	if s.active == path {
		s.active = ""
		if n := len(s.tabOrder); n > 0 {
			s.active = s.tabOrder[n-1]
		}
	}
}

// SetActive selects an open tab. Unknown paths are ignored.
func (s *EditorState) SetActive(path string) bool {
	if !s.IsOpen(path) {
		return false
	}
	s.active = path
	return true
}

// Active returns the active path and whether there is one.
func (s *EditorState) Active() (string, bool) {
	return s.active, s.active != ""
}

// ActiveBuffer returns the active buffer, or nil.
func (s *EditorState) ActiveBuffer() *Buffer {
	if s.active == "" {
		return nil
	}
	return s.buffers[s.active]
}

// Buffer returns the buffer for path, or nil.
func (s *EditorState) Buffer(path string) *Buffer {
	return s.buffers[path]
}

// Tabs returns the open paths in tab order.
func (s *EditorState) Tabs() []string {
	tabs := make([]string, len(s.tabOrder))
	copy(tabs, s.tabOrder)
	return tabs
}

// Count returns the number of open buffers.
func (s *EditorState) Count() int {
	return len(s.buffers)
}

// SaveActive saves the active buffer. It is a no-op without one.
func (s *EditorState) SaveActive() error {
	buf := s.ActiveBuffer()
	if buf == nil {
		return nil
	}
	return buf.Save()
}
