package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tapdeck/tapdeck/internal/api"
	"github.com/tapdeck/tapdeck/internal/session"
)

// runShell is the authenticated application shell: an interactive loop over
// the same operations the subcommands expose. The shell re-derives the route
// after every command and exits as soon as the session is gone.
func runShell(cmd *cobra.Command, a *app) error {
	snap := a.session.Snapshot()
	name := snap.User.Name()
	if name == "" {
		name = snap.User.Email()
	}
	fmt.Printf("Welcome%s. Type 'help' for commands.\n", greeting(name))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if a.session.Snapshot().Route() != session.RouteApp {
			return nil
		}

		fmt.Print("tapdeck> ")
		if !scanner.Scan() {
			return nil
		}
		args := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "help":
			fmt.Println("Commands: help, whoami, cards, team, leads, save <id>, unsave <id>, refresh, logout, exit")
		case "whoami":
			s := a.session.Snapshot()
			fmt.Printf("%s <%s>\n", s.User.Name(), s.User.Email())
		case "cards":
			cards, err := a.client.Cards.List(cmd.Context(), "")
			if err != nil {
				fmt.Println("Error:", api.Message(err))
				continue
			}
			for _, c := range cards {
				fmt.Printf("%s  %s  %s\n", c.ID, c.Name, c.Company)
			}
		case "team":
			cards, err := a.client.Team.List(cmd.Context())
			if err != nil {
				fmt.Println("Error:", api.Message(err))
				continue
			}
			for _, c := range cards {
				fmt.Printf("%s  %s  %s\n", c.ID, c.Name, c.Role)
			}
		case "leads":
			leads, err := a.client.Leads.My(cmd.Context())
			if err != nil {
				fmt.Println("Error:", api.Message(err))
				continue
			}
			for _, l := range leads {
				fmt.Printf("%s  %s  %s  [%s]\n", l.ID, l.Name, l.Email, l.Status)
			}
		case "save", "unsave":
			if len(args) < 2 {
				fmt.Printf("Usage: %s <id>\n", args[0])
				continue
			}
			var err error
			if args[0] == "save" {
				err = a.client.Cards.Save(cmd.Context(), args[1])
			} else {
				err = a.client.Cards.Unsave(cmd.Context(), args[1])
			}
			if err != nil {
				fmt.Println("Error:", api.Message(err))
			} else {
				fmt.Println("Done")
			}
		case "refresh":
			a.session.FetchProfile(cmd.Context(), "")
			fmt.Println("Profile refreshed")
		case "logout":
			a.session.Logout()
			fmt.Println("Logged out")
		case "exit":
			fmt.Println("Bye")
			return nil
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func greeting(name string) string {
	if name == "" {
		return ""
	}
	return ", " + name
}
