package linecode

import (
	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// rzEncoder implements RZ (Return-to-Zero): the first half of each bit
// pulses high for 1 or low for 0, and the second half always returns to
// zero. Every bit ends at the zero rail regardless of its neighbors.
type rzEncoder struct{}

func (rzEncoder) encode(bits bitstream.Sequence, p *pen) {
	for i, b := range bits {
		t := float64(i)
		pulse := wave.Low
		if b == bitstream.One {
			pulse = wave.High
		}
		p.flat(t, t+0.5, pulse)
		p.flat(t+0.5, t+1, wave.Zero)
	}
}
