// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/GilTRipper/create-react-native-app/internal/cmdutil"
	"github.com/GilTRipper/create-react-native-app/internal/output"
)

// settingView is one resolved setting in machine-readable output.
type settingView struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd() *cobra.Command {
	var outputFlags cmdutil.OutputFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show resolved configuration",
		Long: `Show every setting with its resolved value and where it came from
(flag, env, config or default).

Examples:
  rnapp config show
  RNAPP_PACKAGE_MANAGER=yarn rnapp config show -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(runConfigShow(outputFlags))
		},
	}

	outputFlags.AddTo(cmd)

	return cmd
}

func runConfigShow(outputFlags cmdutil.OutputFlags) error {
	format, err := outputFlags.Parse()
	if err != nil {
		return err
	}

	l, err := currentLoader()
	if err != nil {
		return err
	}

	resolved := l.ResolveAll()

	if format != output.FormatText {
		views := make([]settingView, 0, len(resolved))
		for _, r := range resolved {
			views = append(views, settingView{Key: r.Key, Value: r.Value, Source: string(r.Source)})
		}
		data, err := output.Marshal(views, format)
		if err != nil {
			return err
		}
		output.Print(string(data))
		return nil
	}

	tbl := output.NewTable("KEY", "VALUE", "SOURCE")
	for _, r := range resolved {
		tbl.Row(r.Key, r.Value, string(r.Source))
	}
	output.Println(output.StyleDim.Render("Config file: " + l.Path()))
	output.Println(tbl.String())
	return nil
}
