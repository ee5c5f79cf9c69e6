// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/GilTRipper/create-react-native-app/internal/errors"
	"github.com/GilTRipper/create-react-native-app/internal/output"
	"github.com/GilTRipper/create-react-native-app/internal/templates"
)

// NewTemplateCmd creates the template command group.
func NewTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Inspect bundled templates",
		Long: `Inspect the templates bundled into rnapp.

Available templates:
  ` + strings.Join(templates.Names(), "\n  "),
	}

	cmd.AddCommand(newTemplateListCmd())
	cmd.AddCommand(newTemplateFilesCmd())
	cmd.AddCommand(newTemplateCheckCmd())

	return cmd
}

func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bundled templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl := output.NewTable("NAME", "DESCRIPTION")
			for _, name := range templates.Names() {
				t, err := templates.Get(name)
				if err != nil {
					return exitError(err)
				}
				tbl.Row(t.Name, t.Description)
			}
			output.Println(tbl.String())
			return nil
		},
	}
}

func newTemplateFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files [name]",
		Short: "Show the files of a template",
		Long: `Show the file tree of a template as it is embedded, before any
exclusion or rewriting.

Examples:
  rnapp template files
  rnapp template files reactnative`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := templateArg(args)
			if err != nil {
				return exitError(err)
			}

			files, err := templates.ListFiles(t.FS)
			if err != nil {
				return exitError(err)
			}
			output.Print(output.RenderSimpleTree(t.Name, files))
			return nil
		},
	}
}

func newTemplateCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [name]",
		Short: "Cross-check a template against its manifest",
		Long: `Cross-check a template tree against its manifest.

Reports substituted files, rename sources or the Android package that are
absent from the tree, path segments spelling a default identifier that no
rename covers, and text files mentioning a default identifier that are not
on the substitution list. Exits with a validation error when anything is found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(runTemplateCheck(args))
		},
	}
}

func runTemplateCheck(args []string) error {
	t, err := templateArg(args)
	if err != nil {
		return err
	}

	findings, err := templates.Check(t)
	if err != nil {
		return err
	}

	if len(findings) == 0 {
		output.Println(output.FormatCheckmark(fmt.Sprintf("Template %s is consistent", output.StyleNoun.Render(t.Name))))
		return nil
	}

	for _, f := range findings {
		output.Println(output.FormatCross(f.Path + ": " + f.Problem))
	}
	return oerrors.NewValidationError(
		fmt.Sprintf("template %s has %d inconsistencies", t.Name, len(findings)),
		t.Name, "", "")
}

// templateArg returns the template named by args, or the default one.
func templateArg(args []string) (*templates.Template, error) {
	if len(args) == 0 {
		return templates.Default()
	}

	t, err := templates.Get(args[0])
	if err != nil {
		return nil, oerrors.NewNotFoundError(err.Error(), args[0],
			"Run 'rnapp template list' to see the bundled templates.")
	}
	return t, nil
}
