package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/letteragent/letteragent/pkg/account"
	"github.com/letteragent/letteragent/pkg/config"
	"github.com/letteragent/letteragent/pkg/kb"
	"github.com/letteragent/letteragent/pkg/template"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "schema <template|kb|account|config>",
		Short: "Print the JSON schema for a stored record type",
		Long: `Prints the JSON schema describing one of the persisted record types.
Useful for validating hand-edited store files or wiring editor support
for letteragent.yml.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"template", "kb", "account", "config"},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &jsonschema.Reflector{
				AllowAdditionalProperties: true,
				ExpandedStruct:            true,
				FieldNameTag:              "json",
			}

			var schema *jsonschema.Schema
			switch args[0] {
			case "template":
				schema = r.Reflect(&template.Descriptor{})
				schema.Title = "Letter Template"
				schema.Description = "A letter template, builtin or custom."
			case "kb":
				schema = r.Reflect(&kb.Item{})
				schema.Title = "Knowledge Base Item"
				schema.Description = "A reusable knowledge base snippet."
			case "account":
				schema = r.Reflect(&account.Profile{})
				schema.Title = "Account Data"
				schema.Description = "The sender profile used in letter signatures."
			case "config":
				r.FieldNameTag = "yaml"
				schema = r.Reflect(&config.Config{})
				schema.Title = "Letteragent Configuration"
				schema.Description = "Configuration schema for letteragent.yml."
			default:
				return fmt.Errorf("unknown schema %q", args[0])
			}

			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal schema: %w", err)
			}

			if out != "" {
				if err := os.WriteFile(out, data, 0644); err != nil {
					return fmt.Errorf("failed to write schema file: %w", err)
				}
				log.WithField("path", out).Info("Schema written")
				return nil
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Write the schema to a file instead of stdout")

	return cmd
}
