package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tapdeck/tapdeck/internal/api"
	"github.com/tapdeck/tapdeck/internal/models"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "View and update inbound leads",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		leads, err := a.client.Leads.My(cmd.Context())
		if err != nil {
			return fmt.Errorf("%s", api.Message(err))
		}
		if jsonOut {
			return printJSON(leads)
		}
		if len(leads) == 0 {
			fmt.Println("No leads found")
			return nil
		}
		w := newTable()
		printTableHeader(w, "ID", "NAME", "EMAIL", "STATUS", "CAPTURED")
		for _, l := range leads {
			captured := ""
			if !l.CreatedAt.IsZero() {
				captured = l.CreatedAt.Format("2006-01-02")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				truncate(l.ID, 12), l.Name, l.Email, l.Status, captured)
		}
		return w.Flush()
	},
}

var leadsSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <new|contacted|closed>",
	Short: "Move a lead to a new status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		status := models.LeadStatus(args[1])
		switch status {
		case models.LeadNew, models.LeadContacted, models.LeadClosed:
		default:
			return fmt.Errorf("unknown status %q", args[1])
		}
		lead, err := a.client.Leads.UpdateStatus(cmd.Context(), args[0], status)
		if err != nil {
			return fmt.Errorf("%s", api.Message(err))
		}
		if jsonOut {
			return printJSON(lead)
		}
		fmt.Printf("Lead %s is now %s\n", lead.ID, lead.Status)
		return nil
	},
}

func init() {
	leadsCmd.AddCommand(leadsListCmd)
	leadsCmd.AddCommand(leadsSetStatusCmd)

	rootCmd.AddCommand(leadsCmd)
}
