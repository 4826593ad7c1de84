package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/linecode"
)

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func update(t *testing.T, m ExplorerModel, keys ...string) ExplorerModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyPress(k))
		var ok bool
		m, ok = next.(ExplorerModel)
		if !ok {
			t.Fatalf("Update returned %T, want ExplorerModel", next)
		}
	}
	return m
}

func testBits(t *testing.T, s string) bitstream.Sequence {
	t.Helper()
	bits, err := bitstream.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", s, err)
	}
	return bits
}

func TestNewExplorerModel(t *testing.T) {
	m := NewExplorerModel(testBits(t, "1011"), 2)

	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
	if m.Scheme() != linecode.NRZL {
		t.Errorf("Scheme() = %q, want %q", m.Scheme(), linecode.NRZL)
	}
	if m.err != nil {
		t.Fatalf("initial render error: %v", m.err)
	}
	if m.rendered == "" {
		t.Error("expected a pre-rendered preview")
	}
}

func TestExplorerCycleSchemes(t *testing.T) {
	m := NewExplorerModel(testBits(t, "10"), 2)

	m = update(t, m, "down", "down", "down")
	if m.Scheme() != linecode.AMI {
		t.Errorf("after 3x down Scheme() = %q, want %q", m.Scheme(), linecode.AMI)
	}

	// Past the last entry the cursor clamps.
	m = update(t, m, "down", "down", "down")
	if m.Scheme() != linecode.CMI {
		t.Errorf("clamped Scheme() = %q, want %q", m.Scheme(), linecode.CMI)
	}

	m = update(t, m, "up", "up", "up", "up", "up", "up")
	if m.Cursor != 0 {
		t.Errorf("clamped Cursor = %d, want 0", m.Cursor)
	}
}

func TestExplorerArrowAliases(t *testing.T) {
	m := NewExplorerModel(testBits(t, "10"), 2)

	m = update(t, m, "right")
	if m.Cursor != 1 {
		t.Errorf("after right Cursor = %d, want 1", m.Cursor)
	}
	m = update(t, m, "left")
	if m.Cursor != 0 {
		t.Errorf("after left Cursor = %d, want 0", m.Cursor)
	}

	m = update(t, m, "l", "l", "h")
	if m.Cursor != 1 {
		t.Errorf("after l,l,h Cursor = %d, want 1", m.Cursor)
	}
}

func TestExplorerZoom(t *testing.T) {
	m := NewExplorerModel(testBits(t, "10"), 2)

	m = update(t, m, "+")
	if m.Cells != 3 {
		t.Errorf("after + Cells = %d, want 3", m.Cells)
	}

	m = update(t, m, "-", "-", "-")
	if m.Cells != 1 {
		t.Errorf("Cells clamped low = %d, want 1", m.Cells)
	}

	for i := 0; i < 20; i++ {
		m = update(t, m, "+")
	}
	if m.Cells != maxExplorerCells {
		t.Errorf("Cells clamped high = %d, want %d", m.Cells, maxExplorerCells)
	}
}

func TestExplorerPolarityToggle(t *testing.T) {
	m := NewExplorerModel(testBits(t, "101"), 2)

	// NRZ-L has no polarity state, p is a no-op.
	m = update(t, m, "p")
	if m.Polarity != 0 {
		t.Errorf("Polarity on NRZ-L = %d, want 0", m.Polarity)
	}

	m = update(t, m, "down", "down", "down") // AMI
	for _, want := range []int{1, -1, 0} {
		m = update(t, m, "p")
		if m.Polarity != want {
			t.Errorf("Polarity = %d, want %d", m.Polarity, want)
		}
	}
}

func TestExplorerPolarityResetsOnSchemeChange(t *testing.T) {
	m := NewExplorerModel(testBits(t, "101"), 2)

	m = update(t, m, "down", "down", "down", "p") // AMI, polarity +1
	if m.Polarity != 1 {
		t.Fatalf("Polarity = %d, want 1", m.Polarity)
	}

	m = update(t, m, "down") // CMI
	if m.Polarity != 0 {
		t.Errorf("Polarity after scheme change = %d, want 0", m.Polarity)
	}
}

func TestExplorerToggles(t *testing.T) {
	m := NewExplorerModel(testBits(t, "10"), 2)

	if !m.Header || !m.Rails {
		t.Fatalf("defaults Header=%v Rails=%v, want both true", m.Header, m.Rails)
	}

	m = update(t, m, "b", "r")
	if m.Header {
		t.Error("Header still set after b")
	}
	if m.Rails {
		t.Error("Rails still set after r")
	}
}

func TestExplorerSave(t *testing.T) {
	m := NewExplorerModel(testBits(t, "1011"), 2)
	m.SaveDir = t.TempDir()

	m = update(t, m, "s")
	if !strings.Contains(m.status, "Saved") {
		t.Fatalf("status = %q, want a saved confirmation", m.status)
	}

	data, err := os.ReadFile(filepath.Join(m.SaveDir, "waveform-nrz-l.svg"))
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("saved file is not an SVG")
	}

	// Any re-render clears the confirmation.
	m = update(t, m, "down")
	if m.status != "" {
		t.Errorf("status after scheme change = %q, want empty", m.status)
	}
}

func TestExplorerQuit(t *testing.T) {
	m := NewExplorerModel(testBits(t, "10"), 2)

	for _, key := range []string{"q", "esc"} {
		_, cmd := m.Update(keyPress(key))
		if cmd == nil {
			t.Fatalf("key %q: no command, want tea.Quit", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %q: command is not tea.Quit", key)
		}
	}
}

func TestExplorerView(t *testing.T) {
	m := NewExplorerModel(testBits(t, "1011"), 2)
	view := m.View()

	for _, want := range []string{"Line Code Explorer", "NRZ-L", "Manchester", "bits: 1011", "[1/5]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	// The alternating polarity line only shows for AMI and CMI.
	if strings.Contains(view, "polarity:") {
		t.Error("View() shows polarity for NRZ-L")
	}
	m = update(t, m, "down", "down", "down")
	if !strings.Contains(m.View(), "polarity: auto") {
		t.Error("View() missing polarity line for AMI")
	}
}

func TestNextPolarity(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 1},
		{1, -1},
		{-1, 0},
	}
	for _, tc := range cases {
		if got := nextPolarity(tc.in); got != tc.want {
			t.Errorf("nextPolarity(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
