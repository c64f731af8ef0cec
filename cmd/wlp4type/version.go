package main

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// version is overwritten at link time with -ldflags "-X main.version=...".
var version = "0.1.0-dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print wlp4type's version number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := semver.ParseTolerant(version)
			if err != nil {
				return errors.Wrapf(err, "invalid version %q", version)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "v%s\n", v)
			return err
		},
	}
}
