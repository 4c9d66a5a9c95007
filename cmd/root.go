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
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gntraits/internal/iofs"
	"github.com/gnames/gntraits/internal/iologger"
	app "github.com/gnames/gntraits/pkg"
	"github.com/gnames/gntraits/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	cfg     *config.Config
)

// getRootCmd builds the base command with all subcommands attached.
// Extracted as a function to facilitate testing.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf(
			"version: %s\nbuild:   %s", app.Version, app.Build,
		),
		Use:   "gntraits",
		Short: "GNtraits harvests bacterial phenotypic traits from BacDive",
		Long: `GNtraits reads species names from a MetaPhlAn-style relative-abundance
profile, queries the BacDive database of the DSMZ for each species, and
collects phenotypic traits into a long-format table.

For every species the tool:
  - searches BacDive for strain records of the binomial
  - prefers the type strain among the candidates
  - extracts positively utilized metabolites, positive enzyme
    activities, oxygen tolerance, Gram stain, cell shape and motility

The result is written as a CSV file with columns
species, set_type, set_id, value, and optionally as a SQLite database.

BacDive API access requires a free DSMZ account. Put the credentials
into the config file or export them as environment variables:

  GNTRAITS_BACDIVE_USER=me@example.org
  GNTRAITS_BACDIVE_PASSWORD=secret

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNTRAITS_*)
  3. Config file (~/.config/gntraits/config.yaml)
  4. Built-in defaults`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gntraits version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gntraits")

	rootCmd.AddCommand(getHarvestCmd())
	rootCmd.AddCommand(getNamesCmd())

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

	// Initialize logging with hardcoded defaults.
	// Will be reconfigured later with user's config settings.
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
	cfg.Update(cfgViper.ToOptions())

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info(
		"Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
	)

	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
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
	// We set them manually so we can see clearly which env variables are
	// allowed. These match the fields included in config.ToOptions() -
	// i.e., persistent configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNTRAITS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// BacDive configuration
	v.BindEnv("bacdive.user", "GNTRAITS_BACDIVE_USER")
	v.BindEnv("bacdive.password", "GNTRAITS_BACDIVE_PASSWORD")
	v.BindEnv("bacdive.api_url", "GNTRAITS_BACDIVE_API_URL")
	v.BindEnv("bacdive.token_url", "GNTRAITS_BACDIVE_TOKEN_URL")
	v.BindEnv("bacdive.pacing_ms", "GNTRAITS_BACDIVE_PACING_MS")
	v.BindEnv("bacdive.use_cache", "GNTRAITS_BACDIVE_USE_CACHE")

	// Input configuration
	v.BindEnv("input.lineage_column", "GNTRAITS_INPUT_LINEAGE_COLUMN")

	// Log configuration
	v.BindEnv("log.level", "GNTRAITS_LOG_LEVEL")
	v.BindEnv("log.format", "GNTRAITS_LOG_FORMAT")
	v.BindEnv("log.destination", "GNTRAITS_LOG_DESTINATION")

	v.AutomaticEnv()
}
