package linecode

import (
	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// amiEncoder implements Bipolar AMI (Alternate Mark Inversion): 0-bits sit
// at the zero rail and leave the polarity untouched; 1-bits render high or
// low according to the current polarity, which flips after every 1-bit and
// persists across intervening 0-bits.
type amiEncoder struct {
	polarity int // polarity the next 1-bit uses
}

func (e *amiEncoder) encode(bits bitstream.Sequence, p *pen) {
	for i, b := range bits {
		t := float64(i)
		if b == bitstream.Zero {
			p.flat(t, t+1, wave.Zero)
			continue
		}

		level := wave.Low
		if e.polarity > 0 {
			level = wave.High
		}
		p.flat(t, t+1, level)
		e.polarity = -e.polarity
	}
}
