package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/configdoc/pkg/configdoc"
)

const (
	exportDesc = `This command exports the configuration variables, with their title and
description in the given language, to JSON, XML, YAML or a Go literal dump.
`
	exportExample = `  # Export all variables as JSON to stdout
  configdoc config:export

  # Export French documentation as YAML
  configdoc config:export -f yml -l fr_FR

  # Write a gzip-compressed XML export using the legacy root element
  configdoc config:export -f xml --xml_root hooks -o config.xml.gz
`
)

var ErrConfigExportFailed = errors.New("config export failed")

// NewExportCmd returns the config:export command.
func NewExportCmd(arg *RootArgs) *cobra.Command {
	args := NewExportArgs(arg)

	cmd := &cobra.Command{
		Use:          "config:export",
		Short:        "Export the configuration variables documentation",
		Long:         exportDesc,
		Example:      exportExample,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(args.RootArgs)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrConfigExportFailed, err)
			}
			defer tryClose(store)

			x := configdoc.NewExporter(store, store, cmd.OutOrStdout(), cmd.ErrOrStderr())

			err = x.Export(cmd.Context(), configdoc.Options{
				Format:     configdoc.Format(args.GetFormat()),
				Locale:     args.GetLang(),
				OutputFile: args.GetOutputFile(),
				XMLRoot:    args.GetXMLRoot(),
			})
			if err != nil {
				return fmt.Errorf("%w: %w", ErrConfigExportFailed, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(args.format, "format", "f", string(configdoc.DefaultFormat),
		fmt.Sprintf("export format wanted: %s", configdoc.FormatNames(", ")))
	must(cmd.RegisterFlagCompletionFunc("format", formatCompletion))

	cmd.Flags().StringVarP(args.lang, "lang", "l", configdoc.DefaultLocale, "The lang to export the configuration")

	cmd.Flags().StringVarP(args.outputFile, "output-file", "o", "", "Write the output in this file")
	must(cmd.MarkFlagFilename("output-file"))

	cmd.Flags().StringVar(args.xmlRoot, "xml_root", configdoc.DefaultXMLRoot, "Root element name for XML exports")

	return cmd
}

func formatCompletion(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(configdoc.FormatEnum))
	for _, f := range configdoc.FormatEnum {
		names = append(names, string(f))
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}

// ExportArgs holds the arguments for the config:export command.
type ExportArgs struct {
	format     *string
	lang       *string
	outputFile *string
	xmlRoot    *string
	*RootArgs
}

// NewExportArgs creates a new [ExportArgs].
func NewExportArgs(args *RootArgs) *ExportArgs {
	return &ExportArgs{
		format:     new(string),
		lang:       new(string),
		outputFile: new(string),
		xmlRoot:    new(string),
		RootArgs:   args,
	}
}

func (a *ExportArgs) GetFormat() string {
	return *a.format
}

func (a *ExportArgs) GetLang() string {
	return *a.lang
}

func (a *ExportArgs) GetOutputFile() string {
	return *a.outputFile
}

func (a *ExportArgs) GetXMLRoot() string {
	return *a.xmlRoot
}
