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
	"os"

	"github.com/spf13/cobra"

	"github.com/xglish/xglish/internal/logger"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "xglish",
	Short: "Colloquial code-mixed text generator",
	Long: `xglish turns English sentences into colloquial code-mixed text: selected
words are translated into an Indic target language and romanized, while
names, loanwords, technical terms and common interjections stay English.

Supported engines: indictrans (local server), libretranslate, google.

Use "xglish mix --help" for mixing options.`,
	Version: version,
}

func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
