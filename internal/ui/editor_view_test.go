package ui

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akaiko1/code-reader/internal/editor"
)

// tabButtons returns the select and close buttons of tab i.
func tabButtons(t *testing.T, v *EditorView, i int) (*widget.Button, *widget.Button) {
	t.Helper()
	require.Greater(t, len(v.tabs.Objects), i)
	box, ok := v.tabs.Objects[i].(*fyne.Container)
	require.True(t, ok)
	require.Len(t, box.Objects, 2)
	return box.Objects[0].(*widget.Button), box.Objects[1].(*widget.Button)
}

func newTestView(t *testing.T) (*EditorView, *editor.EditorState, string) {
	t.Helper()
	test.NewTempApp(t)
	state := editor.NewEditorState()
	v := NewEditorView(state)
	w := test.NewWindow(v.Object())
	t.Cleanup(w.Close)
	return v, state, newProject(t)
}

func TestEmptyView(t *testing.T) {
	v, _, _ := newTestView(t)

	assert.Empty(t, v.tabs.Objects)
	require.Len(t, v.body.Objects, 1)
	center, ok := v.body.Objects[0].(*fyne.Container)
	require.True(t, ok)
	assert.Equal(t, msgNoFileOpen, center.Objects[0].(*widget.Label).Text)
}

func TestTabsFollowTabOrder(t *testing.T) {
	v, state, root := newTestView(t)
	readme := filepath.Join(root, "README.md")
	main := filepath.Join(root, "src", "main.x")
	require.NoError(t, state.Open(readme))
	require.NoError(t, state.Open(main))
	v.Refresh()

	first, _ := tabButtons(t, v, 0)
	second, _ := tabButtons(t, v, 1)
	assert.Equal(t, "README.md", first.Text)
	assert.Equal(t, "main.x", second.Text)
	assert.Equal(t, widget.LowImportance, first.Importance)
	assert.Equal(t, widget.HighImportance, second.Importance)

	assert.Same(t, v.entry, v.body.Objects[0])
	assert.Equal(t, "main\n", v.entry.Text)
}

func TestSelectTab(t *testing.T) {
	v, state, root := newTestView(t)
	readme := filepath.Join(root, "README.md")
	require.NoError(t, state.Open(readme))
	require.NoError(t, state.Open(filepath.Join(root, "src", "main.x")))
	v.Refresh()

	changed := 0
	v.OnChanged = func() { changed++ }

	first, _ := tabButtons(t, v, 0)
	test.Tap(first)

	active, _ := state.Active()
	assert.Equal(t, readme, active)
	assert.Equal(t, "# proj\n", v.entry.Text)
	assert.Equal(t, 1, changed)
}

func TestCloseTab(t *testing.T) {
	v, state, root := newTestView(t)
	readme := filepath.Join(root, "README.md")
	main := filepath.Join(root, "src", "main.x")
	require.NoError(t, state.Open(readme))
	require.NoError(t, state.Open(main))
	v.Refresh()

	_, closeMain := tabButtons(t, v, 1)
	test.Tap(closeMain)

	assert.Equal(t, []string{readme}, state.Tabs())
	active, _ := state.Active()
	assert.Equal(t, readme, active)
	assert.Len(t, v.tabs.Objects, 1)

	_, closeReadme := tabButtons(t, v, 0)
	test.Tap(closeReadme)

	assert.Empty(t, v.tabs.Objects)
	_, isCenter := v.body.Objects[0].(*fyne.Container)
	assert.True(t, isCenter)
}

func TestEditMarksTabModified(t *testing.T) {
	v, state, root := newTestView(t)
	readme := filepath.Join(root, "README.md")
	require.NoError(t, state.Open(readme))
	v.Refresh()

	v.onEdited("# proj\nmore\n")

	assert.True(t, state.Buffer(readme).Modified())
	assert.Equal(t, "# proj\nmore\n", state.Buffer(readme).Content())
	selectBtn, _ := tabButtons(t, v, 0)
	assert.Equal(t, "README.md"+modifiedMarker, selectBtn.Text)
}

func TestReopenKeepsEdits(t *testing.T) {
	v, state, root := newTestView(t)
	readme := filepath.Join(root, "README.md")
	main := filepath.Join(root, "src", "main.x")
	require.NoError(t, state.Open(readme))
	v.Refresh()
	v.onEdited("changed")

	require.NoError(t, state.Open(main))
	v.Refresh()
	require.NoError(t, state.Open(readme))
	v.Refresh()

	assert.Equal(t, "changed", v.entry.Text)
	assert.Len(t, v.tabs.Objects, 2)
}
