package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tapdeck/tapdeck/internal/session"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if email == "" {
			email = promptLine("Email: ")
		}
		if password == "" {
			password = promptLine("Password: ")
		}
		if err := ack(a.session.Login(cmd.Context(), email, password)); err != nil {
			return err
		}
		fmt.Println("Logged in.")
		return nil
	},
}

var googleLoginCmd = &cobra.Command{
	Use:   "google-login <auth-code>",
	Short: "Log in by exchanging a Google auth code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := ack(a.session.GoogleLogin(cmd.Context(), args[0])); err != nil {
			return err
		}
		fmt.Println("Logged in.")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Start registration (sends a verification code)",
	Long: `Start registration. The backend emails a one-time code; complete the
flow with "tapdeck verify-otp".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if name == "" {
			name = promptLine("Name: ")
		}
		if email == "" {
			email = promptLine("Email: ")
		}
		if password == "" {
			password = promptLine("Password: ")
		}
		return ack(a.session.Register(cmd.Context(), name, email, password))
	},
}

var verifyOTPCmd = &cobra.Command{
	Use:   "verify-otp <email> <code>",
	Short: "Complete registration with the emailed code",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := ack(a.session.VerifyOTPAndLogin(cmd.Context(), args[0], args[1])); err != nil {
			return err
		}
		fmt.Println("Registration complete, logged in.")
		return nil
	},
}

var resendOTPCmd = &cobra.Command{
	Use:   "resend-otp <email>",
	Short: "Re-send the verification code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		return ack(a.session.ResendOTP(cmd.Context(), args[0]))
	},
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password <email>",
	Short: "Request a password reset code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		return ack(a.session.ForgotPassword(cmd.Context(), args[0]))
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password <email> <code>",
	Short: "Set a new password with the emailed reset code",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			password = promptLine("New password: ")
		}
		return ack(a.session.ResetPassword(cmd.Context(), args[0], args[1], password))
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		a.session.Logout()
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		a.session.Bootstrap(cmd.Context())
		snap := a.session.Snapshot()
		if snap.Route() != session.RouteApp {
			return fmt.Errorf("not logged in")
		}
		if jsonOut {
			return printJSON(map[string]interface{}{
				"user":    snap.User,
				"profile": snap.Profile,
			})
		}
		fmt.Printf("Name:  %s\n", snap.User.Name())
		fmt.Printf("Email: %s\n", snap.User.Email())
		if role := snap.User.Role(); role != "" {
			fmt.Printf("Role:  %s\n", role)
		}
		if exp := session.TokenExpiry(snap.Token); !exp.IsZero() {
			fmt.Printf("Token expires: %s\n", exp.Format("2006-01-02 15:04:05 MST"))
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")

	registerCmd.Flags().String("name", "", "display name")
	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("password", "", "account password")

	resetPasswordCmd.Flags().String("password", "", "new password")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(googleLoginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(verifyOTPCmd)
	rootCmd.AddCommand(resendOTPCmd)
	rootCmd.AddCommand(forgotPasswordCmd)
	rootCmd.AddCommand(resetPasswordCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
