/*
Copyright © 2025 Xglish Project

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xglish/xglish/internal/config"
	"github.com/xglish/xglish/internal/store"
)

var memoryMaxAge time.Duration

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Inspect the mix memory",
	RunE: func(cmd *cobra.Command, args []string) error {
		mem, err := openMemory()
		if err != nil {
			return err
		}
		defer mem.Close()

		n, err := mem.Count(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("%d cached mixes\n", n)
		return nil
	},
}

var memoryPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete cached mixes",
	RunE: func(cmd *cobra.Command, args []string) error {
		mem, err := openMemory()
		if err != nil {
			return err
		}
		defer mem.Close()

		deleted, err := mem.Purge(context.Background(), memoryMaxAge)
		if err != nil {
			return err
		}
		fmt.Printf("deleted %d cached mixes\n", deleted)
		return nil
	},
}

func openMemory() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("mix memory is disabled (db_path is empty)")
	}
	return store.New(cfg.DBPath)
}

func init() {
	memoryPurgeCmd.Flags().DurationVar(&memoryMaxAge, "older-than", 0, "only purge entries unused for this long (0 = everything)")
	memoryCmd.AddCommand(memoryPurgeCmd)
	rootCmd.AddCommand(memoryCmd)
}
