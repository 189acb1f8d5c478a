package listings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ahmetcoskunkizilkaya/myflat/cmd/flatctl/output"
	"github.com/ahmetcoskunkizilkaya/myflat/cmd/flatctl/root"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/models"
	"github.com/spf13/cobra"
)

func init() {
	listingsCmd := &cobra.Command{
		Use:   "listings",
		Short: "Inspect listings and toggle availability",
	}
	listingsCmd.AddCommand(listListingsCmd(), setAvailabilityCmd())
	root.RootCmd.AddCommand(listingsCmd)
}

func listListingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings, newest first",
		Long: `List available listings the way the public feed shows them.
--all includes unavailable listings. --owner restricts to one user's posts.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
	cmd.Flags().Bool("all", false, "include listings that are no longer available")
	cmd.Flags().String("owner", "", "only show listings posted by this username")
	return cmd
}

func setAvailabilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-availability <id> <true|false>",
		Short: "Mark a listing available or unavailable",
		Args:  cobra.ExactArgs(2),
		RunE:  runSetAvailability,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	owner, _ := cmd.Flags().GetString("owner")

	avail := models.AvailableOnly
	if all {
		avail = models.AnyAvailability
	}

	env, err := root.Open(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	var listings []models.Listing
	if owner != "" {
		user, err := env.Auth.GetByUsername(ctx, owner)
		if err != nil {
			return fmt.Errorf("owner %q: %w", owner, err)
		}
		listings, err = env.Listings.ByOwner(ctx, user.ID, avail)
		if err != nil {
			return err
		}
		for i := range listings {
			listings[i].Owner = *user
		}
	} else {
		listings, err = env.Listings.List(ctx, avail)
		if err != nil {
			return err
		}
	}

	headers := []string{"ID", "Title", "Type", "Post", "Location", "Rent", "Available", "Owner", "Created"}
	var rows [][]interface{}
	for _, l := range listings {
		rows = append(rows, []interface{}{
			l.ID, l.Title, l.FlatType, l.PostType, l.Location, l.Rent,
			output.YesNo(l.IsAvailable), l.Owner.Username, l.CreatedAt.Format(time.DateTime),
		})
	}
	output.RenderTable(cmd.OutOrStdout(), headers, rows)
	return nil
}

func runSetAvailability(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid listing id %q", args[0])
	}
	available, err := strconv.ParseBool(args[1])
	if err != nil {
		return fmt.Errorf("invalid availability %q: use true or false", args[1])
	}

	env, err := root.Open(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	listing, err := env.Listings.SetAvailability(cmd.Context(), uint(id), available)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Listing %d (%s) available=%t\n", listing.ID, listing.Title, listing.IsAvailable)
	return nil
}
