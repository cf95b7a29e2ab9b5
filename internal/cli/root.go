// Package cli implements the tapdeck command line client. Commands are thin:
// they collect input, call the session controller or an API service, and
// print the result.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tapdeck/tapdeck/internal/api"
	"github.com/tapdeck/tapdeck/internal/config"
	"github.com/tapdeck/tapdeck/internal/session"
	"github.com/tapdeck/tapdeck/internal/store"
)

var (
	cfgFile string
	jsonOut bool
)

// app bundles the wired-up collaborators every command needs. It is built
// once per invocation; nothing here is package-global state beyond the cobra
// tree itself.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	store   *store.FileStore
	client  *api.Client
	session *session.Controller
}

func getApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, err
	}
	st, err := store.New(cfg.DataDir, logger)
	if err != nil {
		return nil, err
	}
	client := api.NewClient(cfg.BaseURL, st,
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(logger),
	)
	ctl := session.New(st, client.Auth, logger)
	return &app{cfg: cfg, log: logger, store: st, client: client, session: ctl}, nil
}

// newLogger builds a stderr logger. Quiet by default so command output stays
// clean; debug mode opens the floodgates.
func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

var rootCmd = &cobra.Command{
	Use:   "tapdeck",
	Short: "Client for the tapdeck digital business-card platform",
	Long: `tapdeck manages your digital business cards, team cards and leads.

Run without a subcommand to restore your session and enter the interactive
shell; if no session is stored you are taken through the login flow first.`,
	SilenceUsage: true,
	RunE:         runRoot,
}

// runRoot is the app-start path: bootstrap the session, then let the derived
// route decide between the shell and the entry flow.
func runRoot(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	a.session.Bootstrap(cmd.Context())

	switch a.session.Snapshot().Route() {
	case session.RouteApp:
		return runShell(cmd, a)
	case session.RouteEntry:
		if err := runEntryFlow(cmd, a); err != nil {
			return err
		}
		return runShell(cmd, a)
	default:
		return fmt.Errorf("unexpected route state")
	}
}

// runEntryFlow is the unauthenticated path: prompt for credentials until a
// session is established or the user gives up.
func runEntryFlow(cmd *cobra.Command, a *app) error {
	fmt.Println("Not logged in. Enter your credentials (or Ctrl-C to quit).")
	for {
		email := promptLine("Email: ")
		password := promptLine("Password: ")
		res := a.session.Login(cmd.Context(), email, password)
		if res.OK {
			fmt.Println("Logged in.")
			return nil
		}
		if email == "" && password == "" {
			return fmt.Errorf("aborted")
		}
		// Blocking acknowledgement of the failure, then retry.
		fmt.Printf("Login failed: %s\n", res.Message)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON")
}

// Execute runs the CLI. version and buildDate come from the build.
func Execute(version, buildDate string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildDate)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
