package main

import (
	goflag "flag"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// envPrefix namespaces environment overrides: --vertices ⇔ PATHRACE_VERTICES.
const envPrefix = "PATHRACE"

const cliLong = `Race Dijkstra's algorithm against A* search.

Both engines run concurrently on the same graph and the same source and
destination. Every improved path they discover can be drawn into a PNG, and
the final routes are compared for cost, time and number of settled vertices.`

// NewCommandCLI builds the root command and its subcommands.
func NewCommandCLI(name string, out, errout io.Writer) *cobra.Command {
	cmds := &cobra.Command{
		Use:           name,
		Short:         "Compare Dijkstra and A* on Euclidean graphs",
		Long:          cliLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmds.SetOut(out)
	cmds.SetErr(errout)

	cmds.PersistentFlags().String("config", "", "Read flag defaults from this file (yaml, json or toml).")
	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmds.PersistentFlags().AddGoFlagSet(klogFlags)

	cmds.AddCommand(
		NewCmdRun(out),
		NewCmdGrid(out),
		NewCmdVersion(out),
	)

	return cmds
}

// loadViper layers config file, environment and explicitly set flags, in
// increasing order of precedence.
func loadViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
		klog.V(2).Infof("loaded config from %s", v.ConfigFileUsed())
	}

	return v, nil
}
