package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/configdoc/pkg/configdoc"
	"github.com/macropower/configdoc/pkg/configstore"
)

const setExample = `  # Document a variable in English
  configdoc config:set store_name --value "My shop" --title "Store name"

  # Add the French translation
  configdoc config:set store_name --value "My shop" -l fr_FR --title "Nom de la boutique"
`

var ErrConfigSetFailed = errors.New("config set failed")

// NewSetCmd returns the config:set command.
func NewSetCmd(args *RootArgs) *cobra.Command {
	value := new(string)
	lang := new(string)
	title := new(string)
	description := new(string)

	cmd := &cobra.Command{
		Use:          "config:set NAME",
		Short:        "Create or update a configuration variable",
		Example:      setExample,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			store, err := openStore(args)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrConfigSetFailed, err)
			}
			defer tryClose(store)

			installed, err := store.Installed(cmd.Context())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrConfigSetFailed, err)
			}

			if !installed {
				return fmt.Errorf("%w: %w: run the install command first", ErrConfigSetFailed, configdoc.ErrNotInstalled)
			}

			flags := cmd.Flags()
			if !flags.Changed("title") && !flags.Changed("description") {
				err = store.SetValue(cmd.Context(), pArgs[0], *value)
			} else {
				err = store.Set(cmd.Context(), configstore.Variable{
					Name:        pArgs[0],
					Value:       *value,
					Locale:      configdoc.NormalizeLocale(*lang),
					Title:       *title,
					Description: *description,
				})
			}

			if err != nil {
				return fmt.Errorf("%w: %w", ErrConfigSetFailed, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(value, "value", "", "Value of the variable")
	cmd.Flags().StringVarP(lang, "lang", "l", configdoc.DefaultLocale, "The lang of the title and description")
	cmd.Flags().StringVar(title, "title", "", "Localized title")
	cmd.Flags().StringVar(description, "description", "", "Localized description")

	return cmd
}
