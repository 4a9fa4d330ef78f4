package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/segmentio/transmute"
	"github.com/segmentio/transmute/compress"
	"github.com/segmentio/transmute/internal/debug"
)

type encodeFlags struct {
	typeName string
	codec    string
	endian   string
	file     string
}

func newEncodeCommand() *cobra.Command {
	flags := new(encodeFlags)

	cmd := &cobra.Command{
		Use:   "encode VALUE...",
		Short: "Write values as an array of the given type",
		Long: `Parse the arguments as values of the given type and write the memory of the
array they form, optionally compressed, to stdout or to a file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.typeName, "type", "t", "", "element type")
	cmd.Flags().StringVarP(&flags.codec, "codec", "c", "", "compression codec of the output")
	cmd.Flags().StringVar(&flags.endian, "endian", "native", "byte order of the output: native, little, big")
	cmd.Flags().StringVarP(&flags.file, "file", "o", "-", "output file, - for stdout")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func runEncode(cmd *cobra.Command, flags *encodeFlags, args []string) error {
	elem, err := lookupElementType(flags.typeName)
	if err != nil {
		return err
	}
	order, err := parseByteOrder(flags.endian)
	if err != nil {
		return err
	}

	var codec compress.Codec
	if flags.codec != "" {
		if codec, err = transmute.LookupCodec(flags.codec); err != nil {
			return err
		}
	}

	data, err := elem.encode(codec, args, order)
	if err != nil {
		return err
	}
	debug.Format("encode: %d values of %s in %d bytes", len(args), elem, len(data))

	if flags.file == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(flags.file, data, 0o644); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	return nil
}
