package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "holocron",
	Short: "Browse Star Wars characters from SWAPI",
	Long: `Holocron lists a handful of Star Wars characters as chips, shows the
selected character's attributes with their films, species, vehicles and
starships resolved by name, and charts height against mass.`,
	SilenceUsage: true,
	RunE:         runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .holocron.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("base-url", "", "SWAPI base URL")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().String("telemetry-file", "", "append JSONL telemetry events to this file")
	rootCmd.PersistentFlags().String("roster-file", "", "TOML file of extra character names")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag("telemetry_file", rootCmd.PersistentFlags().Lookup("telemetry-file"))
	_ = viper.BindPFlag("roster_file", rootCmd.PersistentFlags().Lookup("roster-file"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".holocron")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("HOLOCRON")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault opens the browser on a terminal and falls back to help
// when output is piped.
func runRootDefault(cmd *cobra.Command, args []string) error {
	if !isStderrTTY() {
		return cmd.Help()
	}
	browseCmd.SetContext(cmd.Context())
	return runBrowse(browseCmd, args)
}
