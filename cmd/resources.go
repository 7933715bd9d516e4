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
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xglish/xglish/internal/config"
	"github.com/xglish/xglish/internal/resources"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Inspect the loaded resource tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		res, err := resources.Load(cfg.DataDir)
		if err != nil {
			return err
		}

		formality, whitelist, tech, lexicon := res.Counts()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "data dir:\t%s\n", cfg.DataDir)
		fmt.Fprintf(w, "formality benchmark:\t%d words\n", formality)
		fmt.Fprintf(w, "manual whitelist:\t%d words\n", whitelist)
		fmt.Fprintf(w, "tech terms:\t%d words\n", tech)
		fmt.Fprintf(w, "frequency lexicon:\t%d words\n", lexicon)
		return w.Flush()
	},
}

var resourcesLookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Show how the resource tables see a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		res, err := resources.Load(cfg.DataDir)
		if err != nil {
			return err
		}

		word := args[0]
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "word:\t%s\n", resources.Normalize(word))
		if scale, ok := res.FormalityScore(word); ok {
			fmt.Fprintf(w, "formality scale:\t%d\n", scale)
		} else {
			fmt.Fprintf(w, "formality scale:\t(not scored)\n")
		}
		fmt.Fprintf(w, "tech term:\t%t\n", res.IsTechTerm(word))
		fmt.Fprintf(w, "manual keep:\t%t\n", res.IsManualKeep(word))
		fmt.Fprintf(w, "zipf frequency:\t%.2f\n", res.ZipfFrequency(word))
		return w.Flush()
	},
}

func init() {
	resourcesCmd.AddCommand(resourcesLookupCmd)
	rootCmd.AddCommand(resourcesCmd)
}
