package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/EvapeGT/NetCom/pkg/errors"
	"github.com/EvapeGT/NetCom/pkg/linecode"
	"github.com/EvapeGT/NetCom/pkg/render/statediag"
)

// schemesCommand creates the schemes command for listing coding schemes.
func (c *CLI) schemesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schemes",
		Short: "List the supported line coding schemes",
		RunE: func(cmd *cobra.Command, args []string) error {
			printSchemesTable()
			printNewline()
			printNextStep("Preview", `netcom tui "HI"`)
			return nil
		},
	}

	cmd.AddCommand(c.schemesDiagramCommand())
	cmd.AddCommand(c.schemesRulesCommand())

	return cmd
}

// schemesRulesCommand creates the "schemes rules" subcommand.
func (c *CLI) schemesRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules [scheme]",
		Short: "Print the encoding rule for one scheme, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				scheme, err := linecode.ParseScheme(args[0])
				if err != nil {
					return err
				}
				printSchemeRule(scheme)
				return nil
			}
			for _, s := range linecode.Schemes() {
				printSchemeRule(s)
			}
			return nil
		},
	}
}

// printSchemeRule prints one scheme's name and encoding rule.
func printSchemeRule(s linecode.Scheme) {
	fmt.Printf("%s %s\n", StyleHighlight.Render(s.Name()), StyleDim.Render("("+string(s)+")"))
	fmt.Printf("  %s\n", StyleValue.Render(s.Description()))
}

// printSchemesTable renders the scheme overview as a bordered table.
// Stateful marks schemes whose encoder keeps polarity state between bits.
func printSchemesTable() {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, s := range linecode.Schemes() {
		stateful := ""
		if s.Alternating() {
			stateful = iconSuccess
		}
		rows = append(rows, []string{string(s), s.Name(), stateful, s.Description()})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Scheme", "Name", "Stateful", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 0:
				return StyleHighlight
			case 2:
				return StyleSuccess
			default:
				return StyleValue
			}
		})

	fmt.Println(t.Render())
}

// schemesDiagramCommand creates the "schemes diagram" subcommand.
func (c *CLI) schemesDiagramCommand() *cobra.Command {
	var (
		format      string
		output      string
		description bool
	)

	cmd := &cobra.Command{
		Use:   "diagram [scheme]",
		Short: "Render the encoder state diagram for a scheme",
		Long: `Render the encoder state diagram for a scheme.

The diagram shows the encoder states and the output level produced for each
input bit. Alternating schemes (AMI, CMI) have one state per polarity.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSchemesDiagram(withLogger(cmd.Context(), c.Logger), args[0], format, output, description)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, png, dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <scheme>-diagram.<format>); - for stdout")
	cmd.Flags().BoolVar(&description, "description", false, "include the scheme description in the diagram")

	return cmd
}

// runSchemesDiagram renders a single scheme's state diagram.
func (c *CLI) runSchemesDiagram(ctx context.Context, schemeArg, format, output string, description bool) error {
	scheme, err := linecode.ParseScheme(schemeArg)
	if err != nil {
		return err
	}

	dot, err := statediag.ToDOT(scheme, statediag.Options{Description: description})
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s state diagram...", scheme))
	spinner.Start()

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = statediag.RenderSVG(dot)
	case "png":
		data, err = statediag.RenderPNG(dot)
	default:
		err = errors.New(errors.ErrCodeInvalidFormat,
			"invalid diagram format: %q (must be one of: svg, png, dot)", format)
	}
	if err != nil {
		spinner.StopWithError("Diagram failed")
		return err
	}
	spinner.Stop()

	if output == "" {
		output = fmt.Sprintf("%s-diagram.%s", scheme, format)
	}
	path := output
	if path == "-" {
		path = ""
	}
	if err := writeArtifact(ctx, path, data); err != nil {
		return err
	}

	if path != "" {
		printSuccess("State diagram complete")
		printFile(path)
	}
	return nil
}
