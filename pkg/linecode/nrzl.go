package linecode

import (
	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// nrzlEncoder implements NRZ-L (Non-Return-to-Zero Level): the signal level
// directly represents the bit value for the full bit duration, high for 1
// and zero for 0. Level changes happen instantaneously at the bit boundary.
type nrzlEncoder struct{}

func (nrzlEncoder) encode(bits bitstream.Sequence, p *pen) {
	for i, b := range bits {
		level := wave.Zero
		if b == bitstream.One {
			level = wave.High
		}
		p.flat(float64(i), float64(i)+1, level)
	}
}
