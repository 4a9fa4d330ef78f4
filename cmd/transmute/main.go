// Command transmute inspects and produces buffers of typed values in the
// memory layout used by the transmute package.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/segmentio/transmute/internal/debug"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		perrorf("Error: %s", err)
		os.Exit(1)
	}
}

type globalFlags struct {
	output string
	debug  bool
}

func newRootCommand() *cobra.Command {
	flags := new(globalFlags)

	root := &cobra.Command{
		Use:   "transmute",
		Short: "Reinterpret files as arrays of typed values, and values as bytes",
		Long: `transmute reads and writes buffers holding arrays of fixed size values
in their in-memory representation, optionally compressed.

Every length and alignment check made by the commands is the one the
transmute library would make on the same buffer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug.Toggle(flags.debug)
			if _, err := newFormatter(flags.output); err != nil {
				return err
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.output, "output", "table", "output format: table, json, yaml")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "display debugging logs on stderr")

	root.AddCommand(
		newDumpCommand(flags),
		newEncodeCommand(),
		newGuardCommand(flags),
		newAlignCommand(flags),
	)
	return root
}

func perrorf(format string, args ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
}
