package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/me/manyas/internal/apiclient"
	"github.com/me/manyas/internal/auth"
	"github.com/me/manyas/internal/config"
	"github.com/me/manyas/internal/credential"
	"github.com/me/manyas/internal/logging"
	"github.com/me/manyas/internal/market"
	"github.com/me/manyas/pkg/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	flagAPI         string
	flagDebug       bool
	flagLogLevel    string
	flagLogFormat   string
	flagCredentials string

	logger *slog.Logger
	creds  credential.Store
	api    *apiclient.Client
)

// errNotSignedIn is returned by commands that need a session when the
// stored credential is missing or rejected.
var errNotSignedIn = errors.New("not signed in; run `manyas login` first")

// NewRootCmd creates the root cobra command for the manyas CLI.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)

	root := &cobra.Command{
		Use:   "manyas",
		Short: "Manyas AI marketplace client",
		Long:  "manyas signs in to the Manyas AI marketplace and lists jobs, applications and portfolio items.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLoggerWithWriter(logging.ParseLevel(flagLogLevel), flagLogFormat, cmd.ErrOrStderr())

			path := flagCredentials
			if path == "" {
				p, err := credential.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			creds = credential.NewFileStore(path)
			api = apiclient.New(v.GetString("api_url"), creds, logger)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagAPI, "api", config.DefaultAPIURL, "Manyas API root (or MANYAS_API_URL env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")
	root.PersistentFlags().StringVar(&flagCredentials, "credentials", "", "Credentials file (default ~/.manyas/credentials.json)")

	// Flag beats environment beats the flag default.
	_ = v.BindPFlag("api_url", root.PersistentFlags().Lookup("api"))
	_ = v.BindEnv("api_url")

	root.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newJobsCmd(),
		newApplicationsCmd(),
		newPortfolioCmd(),
	)

	return root
}

// checkedSession loads the stored credential and verifies it against the
// API, like a fresh application load.
func checkedSession(ctx context.Context) *auth.Store {
	st := auth.NewStore(api, creds, logger)
	st.Check(ctx)
	return st
}

// requireRole gates a command on role with the same decision the web
// dashboards use.
func requireRole(ctx context.Context, role model.Role) (model.User, *market.Client, error) {
	st := checkedSession(ctx)
	d := auth.Decide(st, role)
	switch d.Kind {
	case auth.Render:
		return d.User, market.New(api), nil
	case auth.RedirectDashboard:
		user, _ := st.User()
		return model.User{}, nil, fmt.Errorf("this command is for %s accounts; you are signed in as a %s", role, user.Role)
	default:
		return model.User{}, nil, errNotSignedIn
	}
}
