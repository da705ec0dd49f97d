package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/klokik/avdecc/pkg/cache"
	"github.com/spf13/cobra"
)

func showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <entity-id>",
		Short: "Print a cached document's full contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eid, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("parsing entity id %q: %w", args[0], err)
			}

			path := cacheFilePath(cacheDirFrom(cmd.Context()), eid)
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			doc, err := cache.Load(data)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}

			pretty, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("rendering document: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
			return nil
		},
	}
}
