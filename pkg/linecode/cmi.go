package linecode

import (
	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// cmiEncoder implements CMI (Coded Mark Inversion). CMI uses only two
// rails: 1-bits render flat at high or zero according to the current
// polarity, which flips after every 1-bit; 0-bits always transition from
// zero to high at mid-bit and leave the polarity untouched. The low rail
// (-V) is never used.
type cmiEncoder struct {
	polarity int // rail the next 1-bit uses: +1 high, -1 zero
}

func (e *cmiEncoder) encode(bits bitstream.Sequence, p *pen) {
	for i, b := range bits {
		t := float64(i)
		if b == bitstream.Zero {
			p.flat(t, t+0.5, wave.Zero)
			p.flat(t+0.5, t+1, wave.High)
			continue
		}

		level := wave.Zero
		if e.polarity > 0 {
			level = wave.High
		}
		p.flat(t, t+1, level)
		e.polarity = -e.polarity
	}
}
