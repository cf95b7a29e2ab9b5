package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tapdeck/tapdeck/internal/api"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage team cards",
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List team cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		cards, err := a.client.Team.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("%s", api.Message(err))
		}
		if jsonOut {
			return printJSON(cards)
		}
		if len(cards) == 0 {
			fmt.Println("No team cards found")
			return nil
		}
		w := newTable()
		printTableHeader(w, "ID", "NAME", "ROLE", "EMAIL")
		for _, c := range cards {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", truncate(c.ID, 12), c.Name, c.Role, c.Email)
		}
		return w.Flush()
	},
}

var teamCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a team card",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		var req api.TeamCardRequest
		req.Name, _ = cmd.Flags().GetString("name")
		req.Role, _ = cmd.Flags().GetString("role")
		req.Email, _ = cmd.Flags().GetString("email")
		req.Phone, _ = cmd.Flags().GetString("phone")
		if req.Name == "" {
			return fmt.Errorf("--name is required")
		}
		card, err := a.client.Team.Create(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("%s", api.Message(err))
		}
		if jsonOut {
			return printJSON(card)
		}
		fmt.Printf("Created team card %s\n", card.ID)
		return nil
	},
}

var teamDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a team card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := a.client.Team.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("%s", api.Message(err))
		}
		fmt.Println("Team card deleted")
		return nil
	},
}

func init() {
	teamCreateCmd.Flags().String("name", "", "member name")
	teamCreateCmd.Flags().String("role", "", "member role")
	teamCreateCmd.Flags().String("email", "", "member email")
	teamCreateCmd.Flags().String("phone", "", "member phone")

	teamCmd.AddCommand(teamListCmd)
	teamCmd.AddCommand(teamCreateCmd)
	teamCmd.AddCommand(teamDeleteCmd)

	rootCmd.AddCommand(teamCmd)
}
