package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var ErrInstallFailed = errors.New("install failed")

// NewInstallCmd returns the install command.
func NewInstallCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:          "install",
		Short:        "Create the configuration database",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(args)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInstallFailed, err)
			}
			defer tryClose(store)

			err = store.Install(cmd.Context())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInstallFailed, err)
			}

			return nil
		},
	}
}
