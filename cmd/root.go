/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/fdsmesh/InputParameters"
	"github.com/notargets/fdsmesh/mesh"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fdsmesh",
	Short: "Partition, replicate, align and balance FDS meshes",
	Long: `
Computes the MESH namelists of Fire Dynamics Simulator cases: Poisson friendly
cell counts, mesh splits, MULT replication, alignment of neighbouring meshes
and the distribution of meshes over MPI processes.

fdsmesh geometry -I case.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: startProfile,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
			profiler = nil
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fdsmesh.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging of the engine decisions")
	rootCmd.PersistentFlags().String("profile", "", "write a cpu or mem profile to the current directory")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	def := mesh.DefaultConfig()
	viper.SetDefault("magnet_ncell", def.MagnetNCell)
	viper.SetDefault("coarser_ratio_min", def.CoarserRatioMin)
	viper.SetDefault("multiple_tolerance", def.MultipleTolerance)
	viper.SetDefault("poisson_search_cap", def.PoissonSearchCap)
	viper.SetDefault("neighbor_tolerance", def.NeighborTolerance)
	viper.SetDefault("workers", def.Workers)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".fdsmesh")
	}
	viper.SetEnvPrefix("FDSMESH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func startProfile(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("profile")
	switch kind {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return fmt.Errorf("unknown profile %q, use cpu or mem", kind)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zc.Build()
}

// loadEngineConfig maps the viper settings onto the engine policy
func loadEngineConfig() (cfg *mesh.Config, err error) {
	cfg = mesh.DefaultConfig()
	cfg.MagnetNCell = viper.GetFloat64("magnet_ncell")
	cfg.CoarserRatioMin = viper.GetFloat64("coarser_ratio_min")
	cfg.MultipleTolerance = viper.GetFloat64("multiple_tolerance")
	cfg.PoissonSearchCap = viper.GetInt("poisson_search_cap")
	cfg.NeighborTolerance = viper.GetFloat64("neighbor_tolerance")
	cfg.Workers = viper.GetInt("workers")
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Logger, err = newLogger(viper.GetBool("verbose")); err != nil {
		return nil, err
	}
	return
}

func readCase(cmd *cobra.Command) (ip *InputParameters.CaseParameters, err error) {
	var path string
	if path, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
		return
	}
	if len(path) == 0 {
		err = fmt.Errorf("must supply a case file (-I, --inputConditionsFile) in YAML format, like:%s", exampleCase)
		return
	}
	return InputParameters.ReadFile(path)
}

const exampleCase = `
########################################
Title: "Test Case"
Poisson: true
MPIProcesses: 4
Meshes:
  - ID: room
    FYI: Ground floor
    IJK: [30, 24, 12]
    XB: [0., 6., 0., 4.8, 0., 2.4]
    NSplits: [2, 2, 1]
    SplitExport: true
########################################
`

func addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("inputConditionsFile", "I", "", "YAML case file with the MESH definitions")
}
