package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/macropower/configdoc/pkg/configstore"
	"github.com/macropower/configdoc/pkg/log"
)

var ErrLogHandlerFailed = errors.New("log handler failed")

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringVarP(args.database, "database", "d", DefaultDatabase(),
		fmt.Sprintf("Path to the configuration database (env %s)", databaseEnv))
	must(cmd.MarkPersistentFlagFilename("database"))

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		h, err := log.CreateHandlerWithStrings(
			cc.ErrOrStderr(),
			args.GetLogLevel(),
			args.GetLogFormat(),
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go", slog.String("database", args.GetDatabase()))

		return nil
	}

	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		slog.Debug("shutting down")

		return nil
	}

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewInstallCmd(args))
	cmd.AddCommand(NewExportCmd(args))
	cmd.AddCommand(NewSetCmd(args))

	return cmd
}

func openStore(args *RootArgs) (*configstore.Store, error) {
	store, err := configstore.Open(args.GetDatabase())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return store, nil
}

// tryClose closes the store, logging any error.
func tryClose(store *configstore.Store) {
	err := store.Close()
	if err != nil {
		slog.Warn("failed to close database", slog.Any("err", err))
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
