package cli

import (
	"errors"
	"io"
	"time"

	"github.com/spf13/cobra"

	"expensetracker/internal/config"
	applog "expensetracker/internal/log"
)

// CmdParams configures the root command. Zero values fall back to the
// environment and the wall clock.
type CmdParams struct {
	Use    string
	Short  string
	Long   string
	Config *config.Config
	Now    func() time.Time
}

// NewRootCommand creates the root command. Running it opens the user's store
// and starts the interactive menu.
func NewRootCommand(params CmdParams) *cobra.Command {
	if params.Use == "" {
		params.Use = "expensetracker"
	}
	if params.Short == "" {
		params.Short = "Track personal expenses from the terminal"
	}
	if params.Long == "" {
		params.Long = `Log expenses, browse them by week, month, year or category and
build monthly reports comparing spending against the yearly average.`
	}

	var user, dataDir, backendType string

	rootCmd := &cobra.Command{
		Use:          params.Use,
		Short:        params.Short,
		Long:         params.Long,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var overrides []func(*config.Config)
			if params.Config != nil {
				base := *params.Config
				overrides = append(overrides, func(c *config.Config) { *c = base })
			}
			flags := cmd.Flags()
			overrides = append(overrides, func(c *config.Config) {
				if flags.Changed("data-dir") {
					c.DataDir = dataDir
				}
				if flags.Changed("backend") {
					c.DataBackend = backendType
				}
				if flags.Changed("user") {
					c.DefaultUser = user
				}
			})

			cfg, err := LoadAndValidateConfig(overrides...)
			if err != nil {
				return err
			}

			logger, err := SetupLogger(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			prompt := NewPrompter(cmd.InOrStdin(), out)

			username := cfg.DefaultUser
			if _, err := parseUsername(username); err != nil {
				username, err = askValid(prompt, "Please enter your name: ", parseUsername)
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			svc, err := OpenSession(ctx, logger, cfg, username, params.Now)
			if err != nil {
				logger.ErrorContext(ctx, "Failed to open session",
					applog.FieldUser, username,
					applog.FieldError, err)
				return err
			}
			defer func() {
				if err := svc.Close(); err != nil {
					logger.Error("Failed to close store", applog.FieldError, err)
				}
			}()

			return NewMenu(svc, prompt, out, logger).Run(ctx)
		},
	}

	rootCmd.Flags().StringVarP(&user, "user", "u", "", "name of the user whose expenses to open (env EXPENSE_USER)")
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "directory holding the per-user stores (env DATA_DIR)")
	rootCmd.Flags().StringVar(&backendType, "backend", "", "storage backend: sqlite or memory (env DATA_BACKEND)")

	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}
