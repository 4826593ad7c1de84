package pipeline

import (
	"github.com/EvapeGT/NetCom/pkg/bitstream"
)

// Encode converts the pipeline input into a bit sequence. Text input is
// encoded 8 bits per character most significant bit first; a raw bit string
// is parsed with whitespace separators allowed.
func Encode(opts Options) (bitstream.Sequence, error) {
	if opts.Bits != "" {
		return bitstream.Parse(opts.Bits)
	}
	return bitstream.Encode(opts.Text)
}
