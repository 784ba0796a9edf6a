package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Akaiko1/code-reader/internal/errors"
)

type project struct {
	readme, main, notes string
}

func newProject(t *testing.T) project {
	t.Helper()
	root := filepath.Join(t.TempDir(), "proj")
	return project{
		readme: writeFile(t, root, "README.md", "# proj\n"),
		main:   writeFile(t, root, "src/main.x", "main\n"),
		notes:  writeFile(t, root, "notes.txt", "notes\n"),
	}
}

func active(s *EditorState) string {
	p, _ := s.Active()
	return p
}

func TestNewEditorStateIsEmpty(t *testing.T) {
	s := NewEditorState()

	_, ok := s.Active()
	assert.False(t, ok)
	assert.Nil(t, s.ActiveBuffer())
	assert.Empty(t, s.Tabs())
	assert.Equal(t, 0, s.Count())
	assert.NoError(t, s.SaveActive())
}

func TestOpenThenIsOpen(t *testing.T) {
	p := newProject(t)
	s := NewEditorState()

	require.NoError(t, s.Open(p.readme))
	assert.True(t, s.IsOpen(p.readme))
	assert.Equal(t, p.readme, active(s))
	assert.Equal(t, "# proj\n", s.ActiveBuffer().Content())
	assert.NotEmpty(t, s.Buffer(p.readme).Syntax())

	s.Close(p.readme)
	assert.False(t, s.IsOpen(p.readme))
	assert.Nil(t, s.Buffer(p.readme))
}

func TestOpenCloseScenario(t *testing.T) {
	p := newProject(t)
	s := NewEditorState()

	require.NoError(t, s.Open(p.readme))
	require.NoError(t, s.Open(p.main))
	s.Close(p.readme)

	assert.Equal(t, []string{p.main}, s.Tabs())
	assert.Equal(t, p.main, active(s))
}

func TestCloseActiveActivatesLastTab(t *testing.T) {
	p := newProject(t)
	s := NewEditorState()
	for _, path := range []string{p.readme, p.main, p.notes} {
		require.NoError(t, s.Open(path))
	}
	require.Equal(t, p.notes, active(s))

	s.Close(p.notes)
	assert.Equal(t, p.main, active(s))
	assert.Equal(t, []string{p.readme, p.main}, s.Tabs())
}

func TestCloseInactiveKeepsActive(t *testing.T) {
	p := newProject(t)
	s := NewEditorState()
	require.NoError(t, s.Open(p.readme))
	require.NoError(t, s.Open(p.main))

	s.Close(p.readme)
	assert.Equal(t, p.main, active(s))

	s.Close("/not/open")
	assert.Equal(t, []string{p.main}, s.Tabs())
}

func TestCloseOnlyTab(t *testing.T) {
	p := newProject(t)
	s := NewEditorState()
	require.NoError(t, s.Open(p.readme))

	s.Close(p.readme)
	_, ok := s.Active()
	assert.False(t, ok)
	assert.Nil(t, s.ActiveBuffer())
	assert.Empty(t, s.Tabs())
}

func TestReopenDoesNotDuplicateOrReload(t *testing.T) {
	p := newProject(t)
	s := NewEditorState()
	require.NoError(t, s.Open(p.readme))
	require.NoError(t, s.Open(p.main))

	s.Buffer(p.readme).SetContent("edited")
	require.NoError(t, os.WriteFile(p.readme, []byte("changed on disk"), 0o644))

	require.NoError(t, s.Open(p.readme))
	assert.Equal(t, []string{p.readme, p.main}, s.Tabs())
	assert.Equal(t, p.readme, active(s))
	assert.True(t, s.ActiveBuffer().Modified())
	assert.Equal(t, "edited", s.ActiveBuffer().Content())
}

func TestFailedOpenLeavesStateUnchanged(t *testing.T) {
	p := newProject(t)
	s := NewEditorState()
	require.NoError(t, s.Open(p.readme))

	binary := filepath.Join(filepath.Dir(p.readme), "blob.bin")
	require.NoError(t, os.WriteFile(binary, []byte{0xff, 0xfe, 0x00, 0x81}, 0o644))

	err := s.Open(binary)
	assert.True(t, apperrors.IsEncoding(err))

	err = s.Open(filepath.Join(filepath.Dir(p.readme), "missing.txt"))
	assert.True(t, apperrors.IsIO(err))

	assert.Equal(t, []string{p.readme}, s.Tabs())
	assert.Equal(t, p.readme, active(s))
	assert.Equal(t, 1, s.Count())
}

func TestSetActive(t *testing.T) {
	p := newProject(t)
	s := NewEditorState()
	require.NoError(t, s.Open(p.readme))
	require.NoError(t, s.Open(p.main))

	assert.True(t, s.SetActive(p.readme))
	assert.Equal(t, p.readme, active(s))

	assert.False(t, s.SetActive(p.notes))
	assert.Equal(t, p.readme, active(s))
}

func TestSaveActive(t *testing.T) {
	p := newProject(t)
	s := NewEditorState()
	require.NoError(t, s.Open(p.notes))

	s.ActiveBuffer().SetContent("rewritten\n")
	require.NoError(t, s.SaveActive())
	assert.False(t, s.ActiveBuffer().Modified())

	data, err := os.ReadFile(p.notes)
	require.NoError(t, err)
	assert.Equal(t, "rewritten\n", string(data))
}

func TestTabsReturnsCopy(t *testing.T) {
	p := newProject(t)
	s := NewEditorState()
	require.NoError(t, s.Open(p.readme))

	tabs := s.Tabs()
	tabs[0] = "mutated"
	assert.Equal(t, []string{p.readme}, s.Tabs())
}
