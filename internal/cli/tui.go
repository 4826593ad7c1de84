package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/errors"
	"github.com/EvapeGT/NetCom/pkg/linecode"
	"github.com/EvapeGT/NetCom/pkg/pipeline"
	"github.com/EvapeGT/NetCom/pkg/render/waveform"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// maxExplorerBits caps the preview width so the waveform fits a terminal.
const maxExplorerBits = 64

// maxExplorerCells bounds the zoom keys, matching the config limit.
const maxExplorerCells = 16

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// tuiCommand creates the tui command for the interactive scheme explorer.
func (c *CLI) tuiCommand() *cobra.Command {
	var (
		bits     string
		file     string
		bitsFile string
		cells    int
	)

	cmd := &cobra.Command{
		Use:   "tui [text]",
		Short: "Explore coding schemes with a live waveform preview",
		Long: `Explore coding schemes with a live waveform preview.

The explorer shows the same input encoded under each scheme, drawn with box
characters. Switch schemes with the arrow keys, zoom with + and -, flip the
initial polarity of alternating schemes with p, and toggle the bit header and
rail labels with b and r. Pressing s saves the current view as an SVG in the
working directory. The preview is limited to 64 bits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			if len(args) == 1 {
				text = args[0]
			}
			if text == "" && bits == "" && file == "" && bitsFile == "" {
				text = "HI"
			}
			return c.runExplorer(text, bits, file, bitsFile, cells)
		},
	}

	cmd.Flags().StringVar(&bits, "bits", "", "raw bit string instead of text")
	cmd.Flags().StringVar(&file, "file", "", "read input text from a file")
	cmd.Flags().StringVar(&bitsFile, "bits-file", "", "read a '0'/'1' bit document from a file")
	cmd.Flags().IntVar(&cells, "cells", pipeline.DefaultCellsPerBit, "terminal cells per bit interval")

	return cmd
}

// runExplorer encodes the input and runs the interactive explorer.
func (c *CLI) runExplorer(text, bitsIn, file, bitsFile string, cells int) error {
	text, bitsIn, err := resolveInput(text, bitsIn, file, bitsFile)
	if err != nil {
		return err
	}

	seq, err := pipeline.Encode(pipeline.Options{Text: text, Bits: bitsIn})
	if err != nil {
		return err
	}
	if len(seq) > maxExplorerBits {
		return errors.New(errors.ErrCodeInvalidInput,
			"interactive preview is limited to %d bits, got %d", maxExplorerBits, len(seq))
	}

	m := NewExplorerModel(seq, cells)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	fm, ok := finalModel.(ExplorerModel)
	if !ok {
		return nil
	}

	input := fmt.Sprintf("%q", text)
	if bitsIn != "" {
		input = "--bits " + seq.String()
	}
	printNewline()
	printNextStep("Render", fmt.Sprintf("netcom wave %s --scheme %s", input, fm.Scheme()))
	return nil
}

// =============================================================================
// ExplorerModel - Interactive scheme explorer
// =============================================================================

// ExplorerModel is the bubbletea model for the scheme explorer. It keeps one
// bit sequence fixed and regenerates the waveform whenever the scheme or a
// display option changes.
type ExplorerModel struct {
	Bits     bitstream.Sequence
	Schemes  []linecode.Scheme
	Cursor   int
	Polarity int // 0 uses the scheme default
	Cells    int
	Header   bool
	Rails    bool
	SaveDir  string

	wf       *wave.Waveform
	rendered string
	status   string
	err      error
}

// NewExplorerModel creates an explorer model with the preview pre-rendered.
func NewExplorerModel(bits bitstream.Sequence, cells int) ExplorerModel {
	m := ExplorerModel{
		Bits:    bits,
		Schemes: linecode.Schemes(),
		Cells:   cells,
		Header:  true,
		Rails:   true,
		SaveDir: ".",
	}
	m.regenerate()
	return m
}

// Scheme returns the currently selected scheme.
func (m ExplorerModel) Scheme() linecode.Scheme {
	return m.Schemes[m.Cursor]
}

func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k", "left", "h":
			if m.Cursor > 0 {
				m.Cursor--
				m.Polarity = 0
				m.regenerate()
			}
		case "down", "j", "right", "l":
			if m.Cursor < len(m.Schemes)-1 {
				m.Cursor++
				m.Polarity = 0
				m.regenerate()
			}
		case "+", "=":
			if m.Cells < maxExplorerCells {
				m.Cells++
				m.regenerate()
			}
		case "-":
			if m.Cells > 1 {
				m.Cells--
				m.regenerate()
			}
		case "p":
			if m.Scheme().Alternating() {
				m.Polarity = nextPolarity(m.Polarity)
				m.regenerate()
			}
		case "b":
			m.Header = !m.Header
			m.regenerate()
		case "r":
			m.Rails = !m.Rails
			m.regenerate()
		case "s":
			m.save()
		}
	}
	return m, nil
}

func (m ExplorerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Line Code Explorer"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ scheme  +/- zoom  p polarity  b bits  r rails  s save  q quit"))
	b.WriteString("\n\n")

	for i, s := range m.Schemes {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := cursor + s.Name()
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.Scheme().Description()))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("bits: " + m.Bits.Grouped(bitstream.BitsPerChar)))
	b.WriteString("\n")
	if m.Scheme().Alternating() {
		b.WriteString(StyleDim.Render("polarity: " + polarityLabel(m.Polarity)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(fmt.Sprintf("preview failed: %v", m.err)))
		b.WriteString("\n")
	} else {
		b.WriteString(m.rendered)
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Schemes))))

	return b.String()
}

// regenerate rebuilds the rendered preview for the current scheme and options.
func (m *ExplorerModel) regenerate() {
	m.status = ""

	var genOpts []linecode.Option
	if m.Polarity != 0 {
		genOpts = append(genOpts, linecode.WithInitialPolarity(m.Polarity))
	}

	w, err := linecode.Generate(m.Bits, m.Scheme(), genOpts...)
	if err != nil {
		m.err = err
		m.wf = nil
		m.rendered = ""
		return
	}

	termOpts := []waveform.TermOption{waveform.WithTermCellsPerBit(m.Cells)}
	if m.Header {
		termOpts = append(termOpts, waveform.WithTermBits(m.Bits))
	}
	if m.Rails {
		termOpts = append(termOpts, waveform.WithTermRailLabels())
	}

	m.err = nil
	m.wf = w
	m.rendered = waveform.RenderTerminal(w, termOpts...)
}

// save writes the current waveform as an SVG into SaveDir.
func (m *ExplorerModel) save() {
	if m.wf == nil {
		return
	}

	opts := []waveform.Option{
		waveform.WithGrid(),
		waveform.WithTitle(m.Scheme().Name()),
	}
	if m.Header {
		opts = append(opts, waveform.WithBits(m.Bits))
	}
	if m.Rails {
		opts = append(opts, waveform.WithRailLabels())
	}

	path := filepath.Join(m.SaveDir, fmt.Sprintf("waveform-%s.svg", m.Scheme()))
	if err := os.WriteFile(path, waveform.RenderSVG(m.wf, opts...), 0o644); err != nil {
		m.status = StyleWarning.Render(fmt.Sprintf("save failed: %v", err))
		return
	}
	m.status = StyleSuccess.Render("Saved " + path)
}

// nextPolarity cycles auto → positive → negative.
func nextPolarity(p int) int {
	switch p {
	case 0:
		return 1
	case 1:
		return -1
	default:
		return 0
	}
}

func polarityLabel(p int) string {
	switch p {
	case 1:
		return "+1"
	case -1:
		return "-1"
	default:
		return "auto"
	}
}
