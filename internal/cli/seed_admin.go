package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSeedAdminCmd() *cobra.Command {
	var (
		email     string
		firstName string
		lastName  string
	)

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the first admin user",
		Long:  "Create an admin user who can then sign in with a one-time code. An existing user with the email is left as is.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.TrimSpace(email)
			if !strings.Contains(email, "@") {
				return fmt.Errorf("invalid email %q", email)
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			user, err := a.db.SeedAdminUser(email, firstName, lastName)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]string{
					"id":    user.ID.String(),
					"email": user.Email,
					"role":  user.Role,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Admin %s (%s) ready\n", user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email (required)")
	cmd.Flags().StringVar(&firstName, "first-name", "Admin", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "User", "last name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
