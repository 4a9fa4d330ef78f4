package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/segmentio/transmute"
)

func newAlignCommand(global *globalFlags) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "align ADDRESS...",
		Short: "Print the number of bytes to discard to align buffers at the given addresses",
		Long: `Print, for each address, the number of leading bytes to discard from a buffer
starting there so that it can be reinterpreted as values of the given type.
Addresses are decimal, or hexadecimal with a 0x prefix.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			elem, err := lookupElementType(typeName)
			if err != nil {
				return err
			}
			output, err := newFormatter(global.output)
			if err != nil {
				return err
			}

			t := &table{columns: []string{"ADDRESS", "ALIGN", "DISCARD", "ALIGNED"}}
			for _, arg := range args {
				addr, err := strconv.ParseUint(arg, 0, 64)
				if err != nil {
					return fmt.Errorf("invalid address: %q", arg)
				}
				discard := transmute.Misalignment(uintptr(addr), elem.Alignment(), elem.Size())
				t.append(
					fmt.Sprintf("%#x", addr),
					strconv.Itoa(elem.Alignment()),
					strconv.Itoa(discard),
					fmt.Sprintf("%#x", addr+uint64(discard)),
				)
			}
			return output.format(cmd.OutOrStdout(), t)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "element type")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}
