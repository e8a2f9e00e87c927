package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lexiscope/internal/cache"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the on-disk result cache",
	}
	cmd.PersistentFlags().String("cache-dir", "", "cache directory (default: from config or $XDG_CACHE_HOME/lexiscope)")

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show the number of cached results and their size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openCacheFromFlags(cmd)
			if err != nil {
				return err
			}
			entries, size, err := store.Stats()
			if err != nil {
				return fmt.Errorf("cache stats: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dir:     %s\nentries: %d\nsize:    %d bytes\n", store.Dir(), entries, size)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openCacheFromFlags(cmd)
			if err != nil {
				return err
			}
			if err := store.DropAll(); err != nil {
				return fmt.Errorf("cache clear: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", store.Dir())
			return nil
		},
	})
	return cmd
}

func openCacheFromFlags(cmd *cobra.Command) (*cache.Cache, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dir := cfg.Cache.Dir
	if f := cmd.Flags().Lookup("cache-dir"); f != nil && f.Changed {
		dir = f.Value.String()
	}
	return cache.Open(dir)
}
