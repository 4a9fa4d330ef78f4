package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/segmentio/transmute"
)

func newGuardCommand(global *globalFlags) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "guard LENGTH...",
		Short: "Print the decision of every guard for buffers of the given lengths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			elem, err := lookupElementType(typeName)
			if err != nil {
				return err
			}
			output, err := newFormatter(global.output)
			if err != nil {
				return err
			}

			t := &table{columns: []string{"LENGTH", "GUARD", "VALUES", "USED", "ERROR"}}
			for _, arg := range args {
				length, err := strconv.Atoi(arg)
				if err != nil || length < 0 {
					return fmt.Errorf("invalid buffer length: %q", arg)
				}
				for _, guard := range transmute.Guards() {
					usable, err := guard.Check(length, elem.Size())
					if err != nil {
						var guardErr *transmute.GuardError
						if !errors.As(err, &guardErr) {
							return err
						}
						t.append(arg, guard.String(), "-", "-", err.Error())
						continue
					}
					t.append(arg, guard.String(), strconv.Itoa(usable/elem.Size()), strconv.Itoa(usable), "")
				}
			}
			return output.format(cmd.OutOrStdout(), t)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "element type")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}
