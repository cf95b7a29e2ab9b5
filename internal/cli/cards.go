package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tapdeck/tapdeck/internal/api"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Manage business cards",
	Long: `Business card commands.

Examples:
  tapdeck cards list
  tapdeck cards create --name "Ada Lovelace" --title "Engineer" --company Analytical
  tapdeck cards save 01HXYZ...`,
}

var cardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		cardType, _ := cmd.Flags().GetString("type")
		cards, err := a.client.Cards.List(cmd.Context(), cardType)
		if err != nil {
			return fmt.Errorf("%s", api.Message(err))
		}
		if jsonOut {
			return printJSON(cards)
		}
		if len(cards) == 0 {
			fmt.Println("No cards found")
			return nil
		}
		w := newTable()
		printTableHeader(w, "ID", "TYPE", "NAME", "TITLE", "COMPANY")
		for _, c := range cards {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				truncate(c.ID, 12), c.Type, c.Name, c.Title, c.Company)
		}
		return w.Flush()
	},
}

var cardsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		card, err := a.client.Cards.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("%s", api.Message(err))
		}
		return printJSON(card)
	},
}

func cardRequestFromFlags(cmd *cobra.Command) api.CardRequest {
	var req api.CardRequest
	req.Type, _ = cmd.Flags().GetString("type")
	req.Name, _ = cmd.Flags().GetString("name")
	req.Title, _ = cmd.Flags().GetString("title")
	req.Company, _ = cmd.Flags().GetString("company")
	req.Email, _ = cmd.Flags().GetString("email")
	req.Phone, _ = cmd.Flags().GetString("phone")
	req.Website, _ = cmd.Flags().GetString("website")
	req.Bio, _ = cmd.Flags().GetString("bio")
	return req
}

var cardsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a card",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		req := cardRequestFromFlags(cmd)
		if req.Name == "" {
			return fmt.Errorf("--name is required")
		}
		card, err := a.client.Cards.Create(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("%s", api.Message(err))
		}
		if jsonOut {
			return printJSON(card)
		}
		fmt.Printf("Created card %s\n", card.ID)
		return nil
	},
}

var cardsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		card, err := a.client.Cards.Update(cmd.Context(), args[0], cardRequestFromFlags(cmd))
		if err != nil {
			return fmt.Errorf("%s", api.Message(err))
		}
		if jsonOut {
			return printJSON(card)
		}
		fmt.Printf("Updated card %s\n", card.ID)
		return nil
	},
}

var cardsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := a.client.Cards.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("%s", api.Message(err))
		}
		fmt.Println("Card deleted")
		return nil
	},
}

var cardsSaveCmd = &cobra.Command{
	Use:   "save <id>",
	Short: "Save someone's card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := a.client.Cards.Save(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("%s", api.Message(err))
		}
		fmt.Println("Card saved")
		return nil
	},
}

var cardsUnsaveCmd = &cobra.Command{
	Use:   "unsave <id>",
	Short: "Remove a card from your saved list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := a.client.Cards.Unsave(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("%s", api.Message(err))
		}
		fmt.Println("Card removed from saved list")
		return nil
	},
}

func addCardFlags(cmd *cobra.Command) {
	cmd.Flags().String("type", "", `card type ("personal" or "business")`)
	cmd.Flags().String("name", "", "card holder name")
	cmd.Flags().String("title", "", "job title")
	cmd.Flags().String("company", "", "company name")
	cmd.Flags().String("email", "", "contact email")
	cmd.Flags().String("phone", "", "contact phone")
	cmd.Flags().String("website", "", "website URL")
	cmd.Flags().String("bio", "", "free-form bio text")
}

func init() {
	cardsListCmd.Flags().String("type", "", `filter by card type ("personal" or "business")`)
	addCardFlags(cardsCreateCmd)
	addCardFlags(cardsUpdateCmd)

	cardsCmd.AddCommand(cardsListCmd)
	cardsCmd.AddCommand(cardsGetCmd)
	cardsCmd.AddCommand(cardsCreateCmd)
	cardsCmd.AddCommand(cardsUpdateCmd)
	cardsCmd.AddCommand(cardsDeleteCmd)
	cardsCmd.AddCommand(cardsSaveCmd)
	cardsCmd.AddCommand(cardsUnsaveCmd)

	rootCmd.AddCommand(cardsCmd)
}
