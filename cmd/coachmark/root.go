package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "COACHMARK"

// rootFlags holds the persistent settings after flags and COACHMARK_*
// environment variables are merged.
type rootFlags struct {
	v *viper.Viper
}

func (f *rootFlags) logLevel() string {
	if f.v.GetBool("verbose") {
		return "debug"
	}
	return f.v.GetString("log-level")
}

func (f *rootFlags) logFile() string {
	return f.v.GetString("log-file")
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "coachmark",
		Short:         "Coachmark walks users through a terminal screen one region at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bindEnv(flags.v, cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-file", "", "Write logs to this file; the demo logs nowhere otherwise")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// bindEnv lets COACHMARK_LOG_LEVEL and friends stand in for unset flags.
func bindEnv(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return v.BindPFlags(cmd.InheritedFlags())
}
