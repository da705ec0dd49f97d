// avdeccctl-cache inspects and manages the on-disk cache.Document files
// a controller writes for entities it has fully enumerated (spec.md
// §4.7).
//
// Usage:
//
//	avdeccctl-cache list
//	avdeccctl-cache show <entity-id>
//	avdeccctl-cache rm <entity-id>
package main

import (
	"fmt"
	"os"

	"github.com/klokik/avdecc/pkg/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var configPath string
	var cacheDir string

	root := &cobra.Command{
		Use:   "avdeccctl-cache",
		Short: "Inspect and manage cached ControlledEntity documents",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (optional; overrides --cache-dir default)")
	root.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "cache directory (overrides config file)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		dir, err := resolveCacheDir(configPath, cacheDir)
		if err != nil {
			return err
		}
		cmd.SetContext(withCacheDir(cmd.Context(), dir))
		return nil
	}

	root.AddCommand(listCommand(), showCommand(), rmCommand())
	return root
}

func resolveCacheDir(configPath, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return "", fmt.Errorf("loading config: %w", err)
		}
		return cfg.Cache.Directory, nil
	}
	return "./cache", nil
}
