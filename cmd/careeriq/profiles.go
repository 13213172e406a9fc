package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/careeriq/internal/profile"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List built-in scoring profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listProfiles(cmd.OutOrStdout())
		},
	}
}

func listProfiles(w io.Writer) error {
	names, err := profile.List()
	if err != nil {
		return fmt.Errorf("list profiles: %w", err)
	}
	for _, name := range names {
		p, err := profile.LoadBuiltin(name)
		if err != nil {
			return exitError(3, "failed to load profile: %v", err)
		}
		fmt.Fprintln(w, profile.Format(p))
	}
	return nil
}
