package statediag

import (
	"bytes"
	"fmt"

	"github.com/EvapeGT/NetCom/pkg/errors"
	"github.com/EvapeGT/NetCom/pkg/linecode"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// Options configures state diagram rendering.
type Options struct {
	// Description adds the scheme's one-line rule as a caption below the
	// diagram.
	Description bool
}

// ToDOT builds the Graphviz DOT source for a scheme's encoder state
// diagram. States are the encoder's polarity memory; stateless schemes
// collapse to a single state with one self-edge per bit value. Edge labels
// read "input / output levels" with half-bit outputs comma separated. The
// resulting DOT can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(scheme linecode.Scheme, opts Options) (string, error) {
	m, err := machineFor(scheme)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  start [shape=point];\n")
	if opts.Description {
		fmt.Fprintf(&buf, "  label=%q;\n", scheme.Name()+": "+scheme.Description())
		buf.WriteString("  labelloc=b;\n")
		buf.WriteString("  fontsize=12;\n")
	}
	buf.WriteString("\n")

	for _, s := range m.states {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", s.id, s.label)
	}

	buf.WriteString("\n")
	fmt.Fprintf(&buf, "  start -> %q;\n", m.initial)
	for _, t := range m.transitions {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", t.from, t.to, t.label)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

type state struct {
	id    string
	label string
}

type transition struct {
	from  string
	to    string
	label string
}

type machine struct {
	states      []state
	initial     string
	transitions []transition
}

// machineFor derives the encoder state machine for a scheme. Alternating
// schemes carry two polarity states; the rest are stateless.
func machineFor(scheme linecode.Scheme) (machine, error) {
	switch scheme {
	case linecode.NRZL:
		return singleState(scheme,
			edge("0", wave.Zero),
			edge("1", wave.High),
		), nil
	case linecode.RZ:
		return singleState(scheme,
			halfEdge("0", wave.Low, wave.Zero),
			halfEdge("1", wave.High, wave.Zero),
		), nil
	case linecode.Manchester:
		return singleState(scheme,
			halfEdge("0", wave.High, wave.Low),
			halfEdge("1", wave.Low, wave.High),
		), nil
	case linecode.AMI:
		return machine{
			states: []state{
				{id: "+1", label: "next mark +V"},
				{id: "-1", label: "next mark -V"},
			},
			initial: polarityID(linecode.DefaultAMIPolarity),
			transitions: []transition{
				{from: "+1", to: "+1", label: "0 / " + levelName(wave.Zero)},
				{from: "-1", to: "-1", label: "0 / " + levelName(wave.Zero)},
				{from: "+1", to: "-1", label: "1 / " + levelName(wave.High)},
				{from: "-1", to: "+1", label: "1 / " + levelName(wave.Low)},
			},
		}, nil
	case linecode.CMI:
		return machine{
			states: []state{
				{id: "+1", label: "next 1 at +V"},
				{id: "-1", label: "next 1 at 0V"},
			},
			initial: polarityID(linecode.DefaultCMIPolarity),
			transitions: []transition{
				{from: "+1", to: "+1", label: "0 / " + levelName(wave.Zero) + "," + levelName(wave.High)},
				{from: "-1", to: "-1", label: "0 / " + levelName(wave.Zero) + "," + levelName(wave.High)},
				{from: "+1", to: "-1", label: "1 / " + levelName(wave.High)},
				{from: "-1", to: "+1", label: "1 / " + levelName(wave.Zero)},
			},
		}, nil
	}
	return machine{}, errors.New(errors.ErrCodeUnsupportedScheme,
		"no state diagram for scheme %q", string(scheme))
}

func singleState(scheme linecode.Scheme, edges ...transition) machine {
	return machine{
		states:      []state{{id: "s", label: scheme.Name()}},
		initial:     "s",
		transitions: edges,
	}
}

func edge(input string, level wave.Level) transition {
	return transition{from: "s", to: "s", label: input + " / " + levelName(level)}
}

func halfEdge(input string, first, second wave.Level) transition {
	return transition{from: "s", to: "s", label: input + " / " + levelName(first) + "," + levelName(second)}
}

func polarityID(p int) string {
	if p > 0 {
		return "+1"
	}
	return "-1"
}

func levelName(l wave.Level) string {
	switch l {
	case wave.High:
		return "+V"
	case wave.Low:
		return "-V"
	default:
		return "0V"
	}
}
