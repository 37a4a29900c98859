package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/letteragent/letteragent/pkg/kb"
	"github.com/letteragent/letteragent/pkg/template"
	"github.com/spf13/cobra"
)

func newKBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kb",
		Short: "Manage the knowledge base of reusable snippets",
	}

	cmd.AddCommand(newKBAddCmd())
	cmd.AddCommand(newKBListCmd())
	cmd.AddCommand(newKBShowCmd())
	cmd.AddCommand(newKBSearchCmd())
	cmd.AddCommand(newKBRemoveCmd())
	cmd.AddCommand(newKBPermissionsCmd())

	return cmd
}

func newKBAddCmd() *cobra.Command {
	var (
		id          string
		title       string
		content     string
		contentFile string
		category    string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create or update a knowledge base item",
		Long: `Creates a knowledge base item, or updates one when --id names an
existing item. Title and content are required; a blank category
defaults to "General".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(loadConfig())
			if err != nil {
				return err
			}
			defer s.Close()

			if contentFile != "" {
				data, err := os.ReadFile(contentFile)
				if err != nil {
					return fmt.Errorf("failed to read content file: %w", err)
				}
				content = strings.TrimRight(string(data), "\n")
			}

			item := kb.Item{
				ID:       id,
				Title:    title,
				Content:  content,
				Category: category,
				Tags:     tags,
			}
			saved, err := st.SaveKBItem(item)
			if err != nil {
				return err
			}
			log.WithField("id", saved.ID).Info("Knowledge base item saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Existing item id to update")
	cmd.Flags().StringVar(&title, "title", "", "Item title (required)")
	cmd.Flags().StringVar(&content, "content", "", "Item content (required unless --content-file)")
	cmd.Flags().StringVar(&contentFile, "content-file", "", "Read content from a file")
	cmd.Flags().StringVar(&category, "category", "", `Category (defaults to "General")`)
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")

	return cmd
}

func newKBListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List knowledge base items",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(loadConfig())
			if err != nil {
				return err
			}
			defer s.Close()

			items := st.KB().FilterCategory(category)
			printKBItems(items)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")

	return cmd
}

func newKBSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search items by title, content, or tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(loadConfig())
			if err != nil {
				return err
			}
			defer s.Close()

			printKBItems(st.KB().Search(args[0]))
			return nil
		},
	}
}

func newKBShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one item's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(loadConfig())
			if err != nil {
				return err
			}
			defer s.Close()

			item, ok := st.KB().Get(args[0])
			if !ok {
				return fmt.Errorf("knowledge base item %q not found", args[0])
			}
			fmt.Println(titleStyle.Render(item.Title))
			fmt.Printf("category: %s\n", item.Category)
			if len(item.Tags) > 0 {
				fmt.Printf("tags:     %s\n", strings.Join(item.Tags, ", "))
			}
			fmt.Printf("updated:  %s\n\n", item.UpdatedAt.Format("2006-01-02 15:04"))
			fmt.Println(item.Content)
			return nil
		},
	}
}

func newKBRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a knowledge base item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(loadConfig())
			if err != nil {
				return err
			}
			defer s.Close()

			if !st.DeleteKBItem(args[0]) {
				return fmt.Errorf("knowledge base item %q not found", args[0])
			}
			log.WithField("id", args[0]).Info("Knowledge base item removed")
			return nil
		},
	}
}

func newKBPermissionsCmd() *cobra.Command {
	var (
		userID string
		role   string
		access string
	)

	cmd := &cobra.Command{
		Use:   "permissions <id>",
		Short: "List or attach advisory permission rules on an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(loadConfig())
			if err != nil {
				return err
			}
			defer s.Close()

			item, ok := st.KB().Get(args[0])
			if !ok {
				return fmt.Errorf("knowledge base item %q not found", args[0])
			}

			if userID == "" && role == "" {
				if len(item.Permissions) == 0 {
					fmt.Println("No permission rules.")
					return nil
				}
				for _, p := range item.Permissions {
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
			return st.SetKBPermissions(item.ID, append(item.Permissions, rule))
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Subject user id")
	cmd.Flags().StringVar(&role, "role", "", "Subject role name")
	cmd.Flags().StringVar(&access, "access", "view", "Access level: view, edit, or admin")

	return cmd
}

func printKBItems(items []kb.Item) {
	if len(items) == 0 {
		fmt.Println("No knowledge base items.")
		return
	}
	for _, it := range items {
		line := fmt.Sprintf("%s  %s  %s",
			idStyle.Render(fmt.Sprintf("%-18s", it.ID)),
			titleStyle.Render(fmt.Sprintf("%-28s", it.Title)),
			tagStyle.Render(it.Category))
		if len(it.Tags) > 0 {
			line += "  " + descStyle.Render(strings.Join(it.Tags, ","))
		}
		fmt.Println(line)
	}
}
