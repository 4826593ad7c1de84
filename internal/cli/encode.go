package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/spf13/cobra"

	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/cache"
	"github.com/EvapeGT/NetCom/pkg/errors"
	"github.com/EvapeGT/NetCom/pkg/io"
	"github.com/EvapeGT/NetCom/pkg/pipeline"
)

// encodeParams holds the resolved inputs for the encode command.
type encodeParams struct {
	text     string // positional text argument
	bits     string // raw bit string from --bits
	file     string // input file from --file
	bitsFile string // bit document from --bits-file
	output   string // output file from --output
	group    int    // digits per group (0 disables grouping)
	noSpace  bool   // force the raw ungrouped format
	copy     bool   // copy the raw bits to the clipboard
}

// encodeCommand creates the encode command for converting input to bits.
func (c *CLI) encodeCommand() *cobra.Command {
	p := encodeParams{group: bitstream.BitsPerChar}

	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text into its binary bit sequence",
		Long: `Encode text into its binary bit sequence.

Each character is encoded as 8 bits, most significant bit first. A raw bit
string can be passed with --bits to validate and reformat it instead, the
input text can be read from a file with --file or piped in on stdin, and a
saved bit document can be read back with --bits-file.

The resulting bits can be written to a file with --output or piped into
'netcom wave --bits'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				p.text = args[0]
			}
			return c.runEncode(withLogger(cmd.Context(), c.Logger), p)
		},
	}

	cmd.Flags().StringVar(&p.bits, "bits", "", "raw bit string instead of text")
	cmd.Flags().StringVar(&p.file, "file", "", "read input text from a file")
	cmd.Flags().StringVar(&p.bitsFile, "bits-file", "", "read a '0'/'1' bit document from a file")
	cmd.Flags().StringVarP(&p.output, "output", "o", "", "write bits to a file instead of stdout")
	cmd.Flags().IntVar(&p.group, "group", p.group, "digits per group in the formatted output (0 disables grouping)")
	cmd.Flags().BoolVar(&p.noSpace, "no-space", false, "print the raw bit string without grouping")
	cmd.Flags().BoolVar(&p.copy, "copy", false, "also copy the raw bit string to the clipboard (OSC 52)")

	return cmd
}

// runEncode resolves the input, encodes it, and prints or writes the bits.
func (c *CLI) runEncode(ctx context.Context, p encodeParams) error {
	logger := loggerFromContext(ctx)

	if p.text == "" && p.bits == "" && p.file == "" && p.bitsFile == "" {
		piped, err := stdinInput()
		if err != nil {
			return err
		}
		p.text = piped
	}

	text, bitsIn, err := resolveInput(p.text, p.bits, p.file, p.bitsFile)
	if err != nil {
		return err
	}
	if p.group != 0 {
		if err := errors.ValidateGroupSize(p.group); err != nil {
			return err
		}
	}

	prog := newProgress(logger)
	bits, err := pipeline.Encode(pipeline.Options{Text: text, Bits: bitsIn})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Encoded %d bits", len(bits)))

	formatted := bits.String()
	if p.group > 0 && !p.noSpace {
		formatted = bits.Grouped(p.group)
	}

	if p.copy {
		// OSC 52 goes to the terminal, keeping stdout clean for pipes.
		_, _ = osc52.New(bits.String()).WriteTo(os.Stderr)
		printDetail("Copied %d bits to the clipboard", len(bits))
	}

	if p.output != "" {
		if err := os.WriteFile(p.output, []byte(formatted+"\n"), 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", p.output, err)
		}
		printSuccess("Encoded %d bits", len(bits))
		printFile(p.output)
		return nil
	}

	fmt.Println(formatted)
	printDetail("Hash: %s", cache.Hash([]byte(bits.String()))[:16])
	printNewline()
	printNextStep("Render", fmt.Sprintf("netcom wave --bits %s --scheme manchester", bits.String()))
	return nil
}

// stdinInput reads piped text from stdin. It returns "" on a terminal so an
// interactive `netcom encode` still gets the usage error.
func stdinInput() (string, error) {
	fi, err := os.Stdin.Stat()
	if err != nil || fi.Mode()&os.ModeCharDevice != 0 {
		return "", nil
	}
	return io.ReadText(os.Stdin)
}

// resolveInput determines the input source for the encode stage. Exactly one
// of text, bits, file, or bitsFile must be provided; file contents are read
// as text, bitsFile contents as a '0'/'1' bit document.
func resolveInput(text, bits, file, bitsFile string) (string, string, error) {
	set := 0
	for _, s := range []string{text, bits, file, bitsFile} {
		if s != "" {
			set++
		}
	}
	if set == 0 {
		return "", "", errors.New(errors.ErrCodeInvalidInput, "provide input text, --bits, --file, or --bits-file")
	}
	if set > 1 {
		return "", "", errors.New(errors.ErrCodeInvalidInput, "input text, --bits, --file, and --bits-file are mutually exclusive")
	}
	switch {
	case file != "":
		loaded, err := io.LoadText(file)
		if err != nil {
			return "", "", err
		}
		return loaded, "", nil
	case bitsFile != "":
		loaded, err := io.LoadBits(bitsFile)
		if err != nil {
			return "", "", err
		}
		return "", loaded.String(), nil
	}
	return text, bits, nil
}
