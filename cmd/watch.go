package cmd

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/letteragent/letteragent/pkg/letter"
	"github.com/letteragent/letteragent/pkg/state"
	"github.com/letteragent/letteragent/pkg/template"
	"github.com/letteragent/letteragent/pkg/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		templateID string
		inputFile  string
		outputFile string
		tone       string
		compliance bool
		debounceMs int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a draft file and regenerate the letter on change",
		Long: `Watches a draft input file and rewrites the generated letter whenever
the draft changes. Useful next to an editor: keep the draft open, and
the letter file stays current.

Example:
  letteragent watch -t 8 --input draft.txt -o letter.txt --compliance`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if tone == "" {
				tone = cfg.DefaultTone
			}
			if !watcher.IsDraftFile(inputFile) {
				log.WithField("input", inputFile).Warn("Input does not look like a draft file (.txt or .md)")
			}

			st, s, err := loadState(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			tmpl, ok := st.Registry().Get(templateID)
			if !ok {
				return fmt.Errorf("template %q not found", templateID)
			}

			w, err := watcher.New()
			if err != nil {
				return fmt.Errorf("failed to create watcher: %w", err)
			}
			defer w.Close()

			if err := w.WatchFile(inputFile); err != nil {
				return fmt.Errorf("failed to watch %s: %w", inputFile, err)
			}

			gen := letter.New(getLogger())
			regenerate := func() {
				if err := regenerateLetter(gen, st, tmpl, inputFile, outputFile, tone, compliance); err != nil {
					log.WithError(err).Error("Regeneration failed")
				} else {
					log.WithField("output", outputFile).Info("Letter regenerated")
				}
			}

			// Initial build so the output exists before the first edit.
			regenerate()

			log.WithField("input", inputFile).Info("Watching for changes")

			// Debounce state
			var mu sync.Mutex
			var timer *time.Timer
			debounce := time.Duration(debounceMs) * time.Millisecond

			for {
				select {
				case event, ok := <-w.Events:
					if !ok {
						return nil
					}
					if !w.Matches(event) {
						continue
					}
					mu.Lock()
					if timer != nil {
						timer.Stop()
					}
					timer = time.AfterFunc(debounce, regenerate)
					mu.Unlock()

				case err, ok := <-w.Errors:
					if !ok {
						return nil
					}
					log.WithError(err).Error("Watcher error")
				}
			}
		},
	}

	cmd.Flags().StringVarP(&templateID, "template", "t", "", "Template id (required)")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Draft file to watch (required)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "letter.txt", "Generated letter path")
	cmd.Flags().StringVar(&tone, "tone", "", "Tone label")
	cmd.Flags().BoolVar(&compliance, "compliance", false, "Append the compliance notice")
	cmd.Flags().IntVar(&debounceMs, "debounce", 200, "Debounce interval in milliseconds")
	cmd.MarkFlagRequired("template")
	cmd.MarkFlagRequired("input")

	return cmd
}

func regenerateLetter(gen *letter.Generator, st *state.State, tmpl template.Descriptor, inputFile, outputFile, tone string, compliance bool) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to read draft: %w", err)
	}
	output := gen.Generate(letter.Request{
		Template:          tmpl,
		UserInput:         strings.TrimRight(string(data), "\n"),
		Tone:              tone,
		IncludeCompliance: compliance,
		Profile:           st.Profile(),
	})
	if err := os.WriteFile(outputFile, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write letter: %w", err)
	}
	return nil
}
