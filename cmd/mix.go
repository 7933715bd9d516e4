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
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xglish/xglish/internal/config"
	"github.com/xglish/xglish/internal/detector"
)

var (
	mixLang      string
	mixThreshold int
	mixEngine    string
	mixNoCache   bool
	mixNoDetect  bool
)

var mixCmd = &cobra.Command{
	Use:   "mix [text]",
	Short: "Code-mix a single English text",
	Long: `Code-mix an English text into the target language: formal words are
translated and romanized, while names, technical terms and colloquial
English stay as they are.

The text is taken from the argument, or from stdin when omitted:

  xglish mix -l hi "Can you send me the report, Rahul?"
  echo "see you at the market" | xglish mix -l ta`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("no input text")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if !mixNoDetect {
			det := detector.New()
			if !det.IsEnglish(text) {
				iso, _ := det.DetectISO(text)
				fmt.Fprintf(os.Stderr, "Input does not look English (detected %s); passing through unmixed\n", iso)
				fmt.Println(text)
				return nil
			}
		}

		m, cleanup, err := buildMixer(cfg, mixEngine, mixNoCache, false)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		out, err := m.Mix(ctx, text, mixLang, mixThreshold)
		if err != nil {
			return fmt.Errorf("mixing failed: %w", err)
		}

		fmt.Println(out)
		return nil
	},
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(raw), nil
}

func init() {
	rootCmd.AddCommand(mixCmd)

	mixCmd.Flags().StringVarP(&mixLang, "lang", "l", "hi", "target language code (hi, bn, ta, ...)")
	mixCmd.Flags().IntVarP(&mixThreshold, "threshold", "t", 0, "formality threshold 1-10 (0 = configured default)")
	mixCmd.Flags().StringVar(&mixEngine, "engine", "", "translation engine: indictrans, libretranslate, google")
	mixCmd.Flags().BoolVar(&mixNoCache, "no-cache", false, "bypass the mix memory")
	mixCmd.Flags().BoolVar(&mixNoDetect, "no-detect", false, "skip the input language check")
}
