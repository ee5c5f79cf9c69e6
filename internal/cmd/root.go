package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/GilTRipper/create-react-native-app/internal/config"
	"github.com/GilTRipper/create-react-native-app/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded during PersistentPreRunE
	loader    *config.Loader
	rnappConf *config.Config
)

// NewRootCmd creates the root command for the rnapp CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rnapp",
		Short: "Create React Native apps",
		Long: `rnapp creates a React Native project from the bundled template, renamed
throughout for your project name, bundle identifier and display name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: RNAPP_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewTemplateCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	pathResult, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return exitError(err)
	}

	loader = config.NewLoader()
	cfg, err := loader.LoadWithDefaults(pathResult.ConfigPath)
	if err != nil {
		// Set up default logging so the error renders properly.
		output.SetupLogging(output.LogConfig{Verbose: verboseFlag})
		return exitError(err)
	}
	rnappConf = cfg

	// Resolve timestamps: flag (if explicitly set) > env/config > default (true)
	logCfg := output.LogConfig{Verbose: verboseFlag}
	ts := loader.Resolve(config.KeyLogTimestamps, config.FlagValue{
		Value: strconv.FormatBool(timestampsFlag),
		Set:   cmd.Flags().Changed("timestamps"),
	})
	logCfg.Timestamps = output.BoolPtr(ts.Bool())

	output.SetupLogging(logCfg)

	output.Debug("initializing CLI",
		"config", pathResult.ConfigPath,
		"config_source", pathResult.Source,
	)
	config.LogResolved(loader.ResolveAll()...)

	return nil
}

// flagValue reports a string flag's value and whether the user set it.
func flagValue(cmd *cobra.Command, name, value string) config.FlagValue {
	return config.FlagValue{Value: value, Set: cmd.Flags().Changed(name)}
}

// boolFlagValue reports a bool flag's value and whether the user set it.
func boolFlagValue(cmd *cobra.Command, name string, value bool) config.FlagValue {
	return config.FlagValue{Value: strconv.FormatBool(value), Set: cmd.Flags().Changed(name)}
}

// currentLoader returns the loader set up by the root command, loading the
// resolved config file when a subcommand runs on its own.
func currentLoader() (*config.Loader, error) {
	if loader != nil {
		return loader, nil
	}

	pathResult, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return nil, err
	}
	l := config.NewLoader()
	cfg, err := l.LoadWithDefaults(pathResult.ConfigPath)
	if err != nil {
		return nil, err
	}
	loader, rnappConf = l, cfg
	return l, nil
}
