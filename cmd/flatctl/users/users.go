package users

import (
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/myflat/cmd/flatctl/output"
	"github.com/ahmetcoskunkizilkaya/myflat/cmd/flatctl/root"
	"github.com/spf13/cobra"
)

func init() {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect and manage registered users",
	}
	usersCmd.AddCommand(listUsersCmd(), promoteCmd())
	root.RootCmd.AddCommand(usersCmd)
}

func listUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func promoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <username>",
		Short: "Grant admin privileges to a user",
		Args:  cobra.ExactArgs(1),
		RunE:  runPromote,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	env, err := root.Open(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	users, err := env.Auth.ListUsers(cmd.Context())
	if err != nil {
		return err
	}

	headers := []string{"ID", "Username", "Email", "Phone", "Admin", "Created"}
	var rows [][]interface{}
	for _, u := range users {
		rows = append(rows, []interface{}{
			u.ID, u.Username, u.Email, u.Phone, output.YesNo(u.IsAdmin), u.CreatedAt.Format(time.DateTime),
		})
	}
	output.RenderTable(cmd.OutOrStdout(), headers, rows)
	return nil
}

func runPromote(cmd *cobra.Command, args []string) error {
	env, err := root.Open(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	user, err := env.Auth.Promote(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("promote %q: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "User %s (id %d) is now an admin\n", user.Username, user.ID)
	return nil
}
