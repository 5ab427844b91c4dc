package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/llehouerou/hymnchtv/internal/errmsg"
	"github.com/llehouerou/hymnchtv/internal/hymnal"
)

func newValidateCmd() *cobra.Command {
	var fu bool
	cmd := &cobra.Command{
		Use:   "validate <hymnal> <number>",
		Short: "Check a hymn number and print its page index",
		Example: `  hymnchtv validate bb 38
  hymnchtv validate db 3 --fu`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, index, err := validateNumber(args[0], args[1], fu)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tabsolute %d\tindex %d\n", ref, ref.Absolute(), index)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fu, "fu", false, "supplement number (大本 only)")
	return cmd
}

func validateNumber(typ, number string, fu bool) (hymnal.Ref, int, error) {
	t, err := hymnal.ParseType(typ)
	if err != nil {
		return hymnal.Ref{}, 0, err
	}
	no, err := strconv.Atoi(number)
	if err != nil {
		return hymnal.Ref{}, 0, fmt.Errorf("invalid hymn number %q", number)
	}
	abs, err := hymnal.Validate(t, no, fu)
	if err != nil {
		return hymnal.Ref{}, 0, fmt.Errorf("%s", errmsg.Validation(err))
	}
	ref := hymnal.FromAbsolute(t, abs)
	index, err := hymnal.IndexOf(ref)
	if err != nil {
		return hymnal.Ref{}, 0, err
	}
	return ref, index, nil
}
