package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tapdeck/tapdeck/internal/api"
	"github.com/tapdeck/tapdeck/internal/models"
)

var customizeCmd = &cobra.Command{
	Use:   "customize",
	Short: "Read or change a card's visual presentation",
}

var customizeGetCmd = &cobra.Command{
	Use:   "get <card-id>",
	Short: "Show a card's customization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		cust, err := a.client.Customization.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("%s", api.Message(err))
		}
		return printJSON(cust)
	},
}

var customizeSetCmd = &cobra.Command{
	Use:   "set <card-id>",
	Short: "Change a card's customization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		var cust models.Customization
		cust.Theme, _ = cmd.Flags().GetString("theme")
		cust.PrimaryColor, _ = cmd.Flags().GetString("color")
		cust.Font, _ = cmd.Flags().GetString("font")
		cust.ShowLogo, _ = cmd.Flags().GetBool("show-logo")
		cust.ShowQR, _ = cmd.Flags().GetBool("show-qr")
		out, err := a.client.Customization.Set(cmd.Context(), args[0], cust)
		if err != nil {
			return fmt.Errorf("%s", api.Message(err))
		}
		if jsonOut {
			return printJSON(out)
		}
		fmt.Println("Customization updated")
		return nil
	},
}

func init() {
	customizeSetCmd.Flags().String("theme", "", "theme name")
	customizeSetCmd.Flags().String("color", "", "primary color (hex)")
	customizeSetCmd.Flags().String("font", "", "font name")
	customizeSetCmd.Flags().Bool("show-logo", false, "show the company logo")
	customizeSetCmd.Flags().Bool("show-qr", false, "show the QR code")

	customizeCmd.AddCommand(customizeGetCmd)
	customizeCmd.AddCommand(customizeSetCmd)

	rootCmd.AddCommand(customizeCmd)
}
