package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func rmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <entity-id>",
		Short: "Delete a cached document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eid, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("parsing entity id %q: %w", args[0], err)
			}

			path := cacheFilePath(cacheDirFrom(cmd.Context()), eid)
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("removing %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", path)
			return nil
		},
	}
}
