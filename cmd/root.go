/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnzoo/internal/iofs"
	"github.com/gnames/gnzoo/internal/iointake"
	"github.com/gnames/gnzoo/internal/iologger"
	"github.com/gnames/gnzoo/internal/iopublish"
	app "github.com/gnames/gnzoo/pkg"
	"github.com/gnames/gnzoo/pkg/config"
	"github.com/gnames/gnzoo/pkg/zookeeper"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command of gnzoo. A new command is created
// on every call, so tests can run it several times.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnzoo",
		Short:   "Creates a habitat report for animals arriving to a zoo",
		Long: `GNzoo reads a pool of names and a list of arriving animals and writes
a population report grouped by habitat.

Every arriving animal gets a unique ID (Hy01, Li02...), a name from the
pool, an estimated birth date and a social group of its species.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNZOO_*)
  3. Config file (~/.config/gnzoo/config.yaml)
  4. Built-in defaults

Examples:
  # Use data/animalNames.txt and data/arrivingAnimals.txt
  gnzoo

  # Custom input files and a JSON copy of the report
  gnzoo -n names.txt -a arrivals.txt -o out/zoo.txt -f json

  # Export animals to SQLite as well
  gnzoo --sqlite zoo.sqlite`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRoot(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "gnzoo version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnzoo")

	rootCmd.Flags().StringP(
		"names", "n", "", "file with names for new animals",
	)
	rootCmd.Flags().StringP(
		"arrivals", "a", "", "file with arriving animals",
	)
	rootCmd.Flags().StringP(
		"output", "o", "", "path of the text report",
	)
	rootCmd.Flags().StringP(
		"format", "f", "",
		"add structured copy of the report: text, json or yaml",
	)
	rootCmd.Flags().StringP(
		"sqlite", "s", "", "export animals to SQLite file",
	)
	rootCmd.Flags().BoolP(
		"progress", "p", false, "show progress bar for arrivals",
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

func runRoot(cmd *cobra.Command) error {
	ctx := context.Background()
	cfg.Update(flagOptions(cmd))

	start := time.Now()
	in := iointake.New(cfg)
	pub := iopublish.New(cfg)
	zk := zookeeper.New(in, pub)

	paths, err := zk.Run(ctx)
	if err != nil {
		return err
	}

	dur := gnfmt.TimeString(time.Since(start).Seconds())
	count := zk.Index().Len()
	slog.Info("Report run finished",
		"animals", count,
		"files", len(paths),
		"duration", dur,
	)

	gn.Info("Processed <em>%s</em> arriving animals in %s",
		humanize.Comma(int64(count)), dur)
	for _, v := range paths[1:] {
		gn.Info("Also written <em>%s</em>", v)
	}
	fmt.Printf("Zoo population report written to %s\n", paths[0])
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNZOO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Input configuration
	v.BindEnv("input.names_path", "GNZOO_INPUT_NAMES_PATH")
	v.BindEnv("input.arrivals_path", "GNZOO_INPUT_ARRIVALS_PATH")

	// Report configuration
	v.BindEnv("report.path", "GNZOO_REPORT_PATH")
	v.BindEnv("report.format", "GNZOO_REPORT_FORMAT")
	v.BindEnv("report.sqlite_path", "GNZOO_REPORT_SQLITE_PATH")

	// Log configuration
	v.BindEnv("log.level", "GNZOO_LOG_LEVEL")
	v.BindEnv("log.format", "GNZOO_LOG_FORMAT")
	v.BindEnv("log.destination", "GNZOO_LOG_DESTINATION")

	// General configuration
	v.BindEnv("with_progress", "GNZOO_WITH_PROGRESS")

	v.AutomaticEnv()
}
