package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/letteragent/letteragent/pkg/template"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB"))
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	descStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List, inspect, and manage letter templates",
	}

	cmd.AddCommand(newTemplatesListCmd())
	cmd.AddCommand(newTemplatesShowCmd())
	cmd.AddCommand(newTemplatesAddCmd())
	cmd.AddCommand(newTemplatesEditCmd())
	cmd.AddCommand(newTemplatesRemoveCmd())
	cmd.AddCommand(newTemplatesPermissionsCmd())

	return cmd
}

func newTemplatesListCmd() *cobra.Command {
	var (
		search   string
		category string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates, optionally filtered by title or category",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(loadConfig())
			if err != nil {
				return err
			}
			defer s.Close()

			matches := st.Registry().Filter(search, template.Category(category))
			for _, d := range matches {
				line := fmt.Sprintf("%s  %s  %s",
					idStyle.Render(fmt.Sprintf("%-16s", d.ID)),
					titleStyle.Render(fmt.Sprintf("%-28s", d.Title)),
					tagStyle.Render(string(d.Category)))
				if d.IsCustom {
					line += "  " + tagStyle.Render("custom")
				}
				fmt.Println(line)
				fmt.Println("                  " + descStyle.Render(d.Description))
			}
			if len(matches) == 0 {
				fmt.Println("No templates match.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive title search")
	cmd.Flags().StringVarP(&category, "category", "c", "All", "Category filter: Student, Faculty, Corporate, Investor, or All")

	return cmd
}

func newTemplatesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one template in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(loadConfig())
			if err != nil {
				return err
			}
			defer s.Close()

			d, ok := st.Registry().Get(args[0])
			if !ok {
				return fmt.Errorf("template %q not found", args[0])
			}

			fmt.Println(titleStyle.Render(d.Title))
			fmt.Printf("id:          %s\n", d.ID)
			fmt.Printf("category:    %s\n", d.Category)
			fmt.Printf("description: %s\n", d.Description)
			fmt.Printf("custom:      %t\n", d.IsCustom)
			if len(d.CustomFields) > 0 {
				fmt.Println("fields:")
				for _, f := range d.CustomFields {
					req := ""
					if f.Required {
						req = " (required)"
					}
					fmt.Printf("  - %s [%s]%s\n", f.Label, f.Type, req)
					if len(f.Options) > 0 {
						fmt.Printf("    options: %s\n", strings.Join(f.Options, ", "))
					}
				}
			}
			for _, p := range d.Permissions {
				subject := p.UserID
				if subject == "" {
					subject = "role:" + p.Role
				}
				fmt.Printf("permission:  %s -> %s\n", subject, p.Access)
			}
			return nil
		},
	}
}

func newTemplatesAddCmd() *cobra.Command {
	var (
		title       string
		description string
		category    string
		fieldSpecs  []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a custom template",
		Long: `Creates a custom template. Custom templates render with the generic
letter skeleton and may declare structured fields that are collected
before generation.

Field specs take the form LABEL:TYPE[:required][:OPT|OPT|...], where
TYPE is text, textarea, select, or date.

Examples:
  letteragent templates add --title "Venue Request" --description "Request an event venue"
  letteragent templates add --title "Budget Ask" --description "Ask for budget" \
      --field "Amount:text:required" --field "Quarter:select:required:Q1|Q2|Q3|Q4"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(loadConfig())
			if err != nil {
				return err
			}
			defer s.Close()

			if err := validCategory(category); err != nil {
				return err
			}
			now := time.Now().UnixMilli()
			fields, err := parseFieldSpecs(fieldSpecs, now)
			if err != nil {
				return err
			}

			d := template.Descriptor{
				ID:           fmt.Sprintf("custom-%d", now),
				Title:        title,
				Category:     template.Category(category),
				Icon:         "FileText",
				Description:  description,
				IsCustom:     true,
				CustomFields: fields,
			}
			if err := st.AddTemplate(d); err != nil {
				return err
			}
			log.WithField("id", d.ID).Info("Template created")
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Template title (required)")
	cmd.Flags().StringVar(&description, "description", "", "Template description (required)")
	cmd.Flags().StringVar(&category, "category", string(template.CategoryCorporate), "Category: Student, Faculty, Corporate, or Investor")
	cmd.Flags().StringArrayVar(&fieldSpecs, "field", nil, "Field spec LABEL:TYPE[:required][:OPT|...] (repeatable)")

	return cmd
}

func newTemplatesEditCmd() *cobra.Command {
	var (
		title       string
		description string
		category    string
		fieldSpecs  []string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a custom template",
		Long: `Edits a custom template in place. Only the given flags change;
--field replaces the whole field set when present. Builtin templates
cannot be edited.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(loadConfig())
			if err != nil {
				return err
			}
			defer s.Close()

			d, ok := st.Registry().Get(args[0])
			if !ok {
				return fmt.Errorf("template %q not found", args[0])
			}

			if title != "" {
				d.Title = title
			}
			if description != "" {
				d.Description = description
			}
			if category != "" {
				if err := validCategory(category); err != nil {
					return err
				}
				d.Category = template.Category(category)
			}
			if len(fieldSpecs) > 0 {
				fields, err := parseFieldSpecs(fieldSpecs, time.Now().UnixMilli())
				if err != nil {
					return err
				}
				d.CustomFields = fields
			}

			if err := st.UpdateTemplate(d); err != nil {
				return err
			}
			log.WithField("id", d.ID).Info("Template updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().StringArrayVar(&fieldSpecs, "field", nil, "Replacement field spec LABEL:TYPE[:required][:OPT|...] (repeatable)")

	return cmd
}

func newTemplatesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a custom template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(loadConfig())
			if err != nil {
				return err
			}
			defer s.Close()

			if !st.RemoveTemplate(args[0]) {
				return fmt.Errorf("template %q not found or not custom", args[0])
			}
			log.WithField("id", args[0]).Info("Template removed")
			return nil
		},
	}
}

func newTemplatesPermissionsCmd() *cobra.Command {
	var (
		userID string
		role   string
		access string
	)

	cmd := &cobra.Command{
		Use:   "permissions <id>",
		Short: "List or attach advisory permission rules on a template",
		Long: `Without flags, lists the rules attached to a template. With --user or
--role (exactly one) plus --access, appends a rule. Rules are stored as
descriptive metadata only; nothing enforces them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(loadConfig())
			if err != nil {
				return err
			}
			defer s.Close()

			d, ok := st.Registry().Get(args[0])
			if !ok {
				return fmt.Errorf("template %q not found", args[0])
			}

			if userID == "" && role == "" {
				if len(d.Permissions) == 0 {
					fmt.Println("No permission rules.")
					return nil
				}
				for _, p := range d.Permissions {
					subject := p.UserID
					if subject == "" {
						subject = "role:" + p.Role
					}
					fmt.Printf("%s -> %s\n", subject, p.Access)
				}
				return nil
			}

			rule := template.PermissionRule{
				UserID: userID,
				Role:   role,
				Access: template.Access(access),
			}
			if err := rule.Validate(); err != nil {
				return err
			}
			return st.SetTemplatePermissions(d.ID, append(d.Permissions, rule))
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Subject user id")
	cmd.Flags().StringVar(&role, "role", "", "Subject role name")
	cmd.Flags().StringVar(&access, "access", "view", "Access level: view, edit, or admin")

	return cmd
}

func validCategory(category string) error {
	for _, c := range template.Categories() {
		if c == template.Category(category) {
			return nil
		}
	}
	return fmt.Errorf("invalid category %q (want Student, Faculty, Corporate, or Investor)", category)
}

// parseFieldSpecs turns LABEL:TYPE[:required][:OPT|...] specs into
// field descriptors with timestamp-derived ids.
func parseFieldSpecs(specs []string, base int64) ([]template.FieldDescriptor, error) {
	var fields []template.FieldDescriptor
	for i, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid --field %q (want LABEL:TYPE)", spec)
		}
		f := template.FieldDescriptor{
			ID:    fmt.Sprintf("field-%d", base+int64(i)),
			Label: parts[0],
			Type:  template.FieldType(parts[1]),
		}
		switch f.Type {
		case template.FieldText, template.FieldTextarea, template.FieldSelect, template.FieldDate:
		default:
			return nil, fmt.Errorf("invalid field type %q in %q", parts[1], spec)
		}
		rest := parts[2:]
		if len(rest) > 0 && rest[0] == "required" {
			f.Required = true
			rest = rest[1:]
		}
		if len(rest) > 0 {
			f.Options = strings.Split(rest[0], "|")
		}
		if f.Type == template.FieldSelect && len(f.Options) == 0 {
			return nil, fmt.Errorf("select field %q needs options", f.Label)
		}
		fields = append(fields, f)
	}
	return fields, nil
}
