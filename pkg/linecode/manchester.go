package linecode

import (
	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// manchesterEncoder implements Manchester encoding: every bit has a
// mandatory mid-bit transition, upward (low to high) for 1 and downward
// (high to low) for 0, independent of neighboring bits.
type manchesterEncoder struct{}

func (manchesterEncoder) encode(bits bitstream.Sequence, p *pen) {
	for i, b := range bits {
		t := float64(i)
		first, second := wave.High, wave.Low
		if b == bitstream.One {
			first, second = wave.Low, wave.High
		}
		p.flat(t, t+0.5, first)
		p.flat(t+0.5, t+1, second)
	}
}
