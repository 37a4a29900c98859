package cmd

import (
	"fmt"

	"github.com/letteragent/letteragent/pkg/account"
	"github.com/spf13/cobra"
)

func newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the sender profile used in letter signatures",
	}

	cmd.AddCommand(newAccountSetCmd())
	cmd.AddCommand(newAccountShowCmd())
	cmd.AddCommand(newAccountClearCmd())

	return cmd
}

func newAccountSetCmd() *cobra.Command {
	var p account.Profile

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save the sender profile",
		Long: `Saves the sender profile used to fill letter headers and signatures.
The whole record is replaced on each save; at least --name and --email
are required. Unset fields fall back to bracketed placeholders in
generated letters.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(loadConfig())
			if err != nil {
				return err
			}
			defer s.Close()

			if err := st.SaveProfile(p); err != nil {
				return err
			}
			log.Info("Account data saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&p.FullName, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&p.Email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&p.Title, "title", "", "Job or role title")
	cmd.Flags().StringVar(&p.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&p.Organization, "organization", "", "Organization name")
	cmd.Flags().StringVar(&p.Address, "address", "", "Street address")
	cmd.Flags().StringVar(&p.City, "city", "", "City")
	cmd.Flags().StringVar(&p.State, "state", "", "State or province")
	cmd.Flags().StringVar(&p.ZipCode, "zip", "", "ZIP or postal code")
	cmd.Flags().StringVar(&p.Country, "country", "", "Country")
	cmd.Flags().StringVar(&p.Signature, "signature", "", "Custom signature block (replaces the synthesized one verbatim)")

	return cmd
}

func newAccountShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved sender profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(loadConfig())
			if err != nil {
				return err
			}
			defer s.Close()

			p := st.Profile()
			if p == nil {
				fmt.Println("No account data saved.")
				return nil
			}
			printField := func(label, v string) {
				if v != "" {
					fmt.Printf("%-14s %s\n", label+":", v)
				}
			}
			printField("name", p.FullName)
			printField("title", p.Title)
			printField("organization", p.Organization)
			printField("email", p.Email)
			printField("phone", p.Phone)
			printField("address", p.Address)
			printField("city", p.City)
			printField("state", p.State)
			printField("zip", p.ZipCode)
			printField("country", p.Country)
			if p.Signature != "" {
				fmt.Printf("signature:\n%s\n", p.Signature)
			}
			return nil
		},
	}
}

func newAccountClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved sender profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, s, err := loadState(loadConfig())
			if err != nil {
				return err
			}
			defer s.Close()

			st.ClearProfile()
			log.Info("Account data cleared")
			return nil
		},
	}
}
