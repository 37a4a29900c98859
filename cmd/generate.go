package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/letteragent/letteragent/pkg/letter"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		templateID string
		inputFile  string
		tone       string
		compliance bool
		fields     []string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "generate [text...]",
		Short: "Generate a letter from a template and your input",
		Long: `Assembles a formatted letter from the selected template, your free
text, and the saved sender profile. Output goes to stdout unless -o is
given.

Examples:
  letteragent generate -t 1 "Fever since yesterday, need 3 days off"
  letteragent generate -t 8 --input pitch.txt --compliance -o letter.txt
  letteragent generate -t sample-custom-1 --field "Project Name=Atlas" "See attached scope."`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if tone == "" {
				tone = cfg.DefaultTone
			}

			st, s, err := loadState(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			tmpl, ok := st.Registry().Get(templateID)
			if !ok {
				return fmt.Errorf("template %q not found (see 'letteragent templates list')", templateID)
			}

			body := strings.Join(args, " ")
			if inputFile != "" {
				data, err := os.ReadFile(inputFile)
				if err != nil {
					return fmt.Errorf("failed to read input file: %w", err)
				}
				body = strings.TrimRight(string(data), "\n")
			}
			if body == "" {
				return fmt.Errorf("no input text given (pass text arguments or --input)")
			}

			values, err := fieldValues(fields)
			if err != nil {
				return err
			}
			userInput := body
			if len(tmpl.CustomFields) > 0 {
				byID := make(map[string]string)
				for _, f := range tmpl.CustomFields {
					if v, ok := values[strings.ToLower(f.Label)]; ok {
						byID[f.ID] = v
					} else if v, ok := values[strings.ToLower(f.ID)]; ok {
						byID[f.ID] = v
					} else if f.Required {
						log.WithField("field", f.Label).Warn("Required field left empty")
					}
				}
				userInput = letter.FlattenFields(tmpl.CustomFields, byID, body)
			}

			// The fixed "thinking" pause before the deterministic
			// substitution runs.
			if delay := cfg.ThinkingDelay(); delay > 0 {
				log.WithField("delay", delay).Debug("Generating letter")
				time.Sleep(delay)
			}

			gen := letter.New(getLogger())
			output := gen.Generate(letter.Request{
				Template:          tmpl,
				UserInput:         userInput,
				Tone:              tone,
				IncludeCompliance: compliance,
				Profile:           st.Profile(),
			})

			if outputFile != "" {
				if err := os.WriteFile(outputFile, []byte(output), 0644); err != nil {
					return fmt.Errorf("failed to write letter: %w", err)
				}
				log.WithField("path", outputFile).Info("Letter written")
				return nil
			}
			fmt.Println(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&templateID, "template", "t", "", "Template id (required)")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read the letter context from a file instead of arguments")
	cmd.Flags().StringVar(&tone, "tone", "", "Tone label: Formal, Semi-formal, or Persuasive")
	cmd.Flags().BoolVar(&compliance, "compliance", false, "Append the compliance notice")
	cmd.Flags().StringArrayVar(&fields, "field", nil, "Custom field value as LABEL=VALUE (repeatable)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the letter to a file instead of stdout")
	cmd.MarkFlagRequired("template")

	return cmd
}

// fieldValues parses repeated LABEL=VALUE flags, keyed by lower-cased
// label.
func fieldValues(pairs []string) (map[string]string, error) {
	values := make(map[string]string)
	for _, p := range pairs {
		label, value, found := strings.Cut(p, "=")
		if !found || label == "" {
			return nil, fmt.Errorf("invalid --field %q (want LABEL=VALUE)", p)
		}
		values[strings.ToLower(label)] = value
	}
	return values, nil
}
