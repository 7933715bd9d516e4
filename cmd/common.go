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
	"time"

	"github.com/xglish/xglish/internal/config"
	"github.com/xglish/xglish/internal/mixer"
	"github.com/xglish/xglish/internal/resources"
	"github.com/xglish/xglish/internal/romanizer"
	"github.com/xglish/xglish/internal/scheduler"
	"github.com/xglish/xglish/internal/store"
	"github.com/xglish/xglish/internal/translator"
)

// buildEngine selects the translation backend once, from the --engine flag or
// the configured default.
func buildEngine(cfg *config.Config, override string) (translator.Service, error) {
	name := cfg.Engine
	if override != "" {
		name = override
	}

	switch name {
	case "indictrans":
		return translator.NewIndicTransClient(cfg.IndicTransURL), nil
	case "libretranslate":
		return translator.NewLibreTranslateClient(cfg.LibreTranslateURL, ""), nil
	case "google":
		return translator.NewGoogleService(cfg.GoogleCredentials), nil
	default:
		return nil, fmt.Errorf("unknown engine: %s", name)
	}
}

// buildMixer wires the full pipeline from config. The returned cleanup
// releases the scheduler worker and the mix memory.
func buildMixer(cfg *config.Config, engineOverride string, noCache, batched bool) (*mixer.Mixer, func(), error) {
	engine, err := buildEngine(cfg, engineOverride)
	if err != nil {
		return nil, nil, err
	}

	res, err := resources.Load(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; classification will rely on frequency and capitalization only\n", err)
		res = resources.Empty()
	}

	var mem *store.Store
	if !noCache && cfg.DBPath != "" {
		mem, err = store.New(cfg.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to open mix memory: %v\n", err)
			mem = nil
		}
	}

	var sched *scheduler.Scheduler
	if batched {
		sched = scheduler.New(engine, scheduler.Options{
			MaxBatchSize: cfg.BatchMaxSize,
			DrainWindow:  millis(cfg.BatchWaitMS),
		})
	}

	m, err := mixer.New(mixer.Options{
		Resources:      res,
		Engine:         engine,
		Transliterator: romanizer.NewAksharamukhaClient(cfg.TransliterateURL),
		Scheduler:      sched,
		Memory:         mem,
		Threshold:      cfg.FormalityThreshold,
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if sched != nil {
			sched.Stop()
		}
		if mem != nil {
			mem.Close()
		}
	}
	return m, cleanup, nil
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
