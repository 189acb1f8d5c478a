package admin

import (
	"fmt"

	"github.com/ahmetcoskunkizilkaya/myflat/cmd/flatctl/root"
	"github.com/spf13/cobra"
)

func init() {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage the bootstrap admin account",
	}
	adminCmd.AddCommand(bootstrapCmd())
	root.RootCmd.AddCommand(adminCmd)
}

func bootstrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the admin user if it does not exist",
		Long:  "Create user \"admin\" with the password from ADMIN_PASSWORD. Does nothing when the user already exists.",
		Args:  cobra.NoArgs,
		RunE:  runBootstrap,
	}
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	env, err := root.Open(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	env.Config.Warn()
	created, err := env.Auth.EnsureAdmin(cmd.Context(), env.Config.AdminPassword)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if created {
		fmt.Fprintln(out, "Admin user created: username=admin")
	} else {
		fmt.Fprintln(out, "Admin user already exists")
	}
	return nil
}
