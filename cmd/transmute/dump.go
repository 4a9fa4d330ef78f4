package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/segmentio/transmute"
	"github.com/segmentio/transmute/internal/debug"
)

type dumpFlags struct {
	typeName string
	guard    string
	codec    string
	offset   int
	endian   string
}

func newDumpCommand(global *globalFlags) *cobra.Command {
	flags := new(dumpFlags)

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the values held in a file",
		Long: `Reinterpret the content of FILE as an array of values of the given type and
print them. Use - to read from stdin.

The length of the content is validated by the guard; compressed files are
decompressed with the codec first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, global, flags, args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.typeName, "type", "t", "", "element type")
	cmd.Flags().StringVarP(&flags.guard, "guard", "g", transmute.DefaultGuard.String(), "length checking policy")
	cmd.Flags().StringVarP(&flags.codec, "codec", "c", "", "compression codec of the file")
	cmd.Flags().IntVar(&flags.offset, "offset", 0, "number of leading bytes to skip")
	cmd.Flags().StringVar(&flags.endian, "endian", "native", "byte order of the file: native, little, big")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func runDump(cmd *cobra.Command, global *globalFlags, flags *dumpFlags, path string) error {
	elem, err := lookupElementType(flags.typeName)
	if err != nil {
		return err
	}
	guard, err := transmute.ParseGuard(flags.guard)
	if err != nil {
		return err
	}
	order, err := parseByteOrder(flags.endian)
	if err != nil {
		return err
	}
	output, err := newFormatter(global.output)
	if err != nil {
		return err
	}

	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	if flags.offset < 0 || flags.offset > len(data) {
		return fmt.Errorf("offset out of range: %d (file has %d bytes)", flags.offset, len(data))
	}
	data = data[flags.offset:]
	debug.Format("dump: %d bytes as %s with the %s guard", len(data), elem, guard)

	var values []string
	if flags.codec == "" {
		values, err = elem.decode(data, guard, order)
	} else {
		codec, lookupErr := transmute.LookupCodec(flags.codec)
		if lookupErr != nil {
			return lookupErr
		}
		values, err = elem.decompress(codec, data, guard, order)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	t := &table{columns: []string{"INDEX", "OFFSET", "VALUE"}}
	for i, v := range values {
		t.append(strconv.Itoa(i), strconv.Itoa(flags.offset+i*elem.Size()), v)
	}
	return output.format(cmd.OutOrStdout(), t)
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read input: %w", err)
	}
	return data, nil
}
