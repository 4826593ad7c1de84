package pipeline

import (
	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/linecode"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// GenerateWave runs the selected line coding scheme over a bit sequence.
// A zero Polarity leaves the scheme's own initial polarity in place.
func GenerateWave(bits bitstream.Sequence, opts Options) (*wave.Waveform, error) {
	scheme, err := linecode.ParseScheme(opts.Scheme)
	if err != nil {
		return nil, err
	}

	var genOpts []linecode.Option
	if opts.Polarity != 0 {
		genOpts = append(genOpts, linecode.WithInitialPolarity(opts.Polarity))
	}

	return linecode.Generate(bits, scheme, genOpts...)
}
