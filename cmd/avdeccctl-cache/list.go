package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klokik/avdecc/pkg/cache"
	"github.com/spf13/cobra"
)

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached entities",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cacheDirFrom(cmd.Context())
			entries, err := os.ReadDir(dir)
			if err != nil {
				if os.IsNotExist(err) {
					return nil
				}
				return fmt.Errorf("reading cache dir %s: %w", dir, err)
			}

			for _, entry := range entries {
				if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
					continue
				}
				data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", entry.Name(), err)
					continue
				}
				doc, err := cache.Load(data)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", entry.Name(), err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%#016x  model=%#x  flags=%s  configurations=%d\n",
					doc.Entity.EntityID, doc.EntityModelID, strings.Join(doc.CompatibilityFlags, ","),
					doc.Entity.ConfigurationsCount)
			}
			return nil
		},
	}
}
