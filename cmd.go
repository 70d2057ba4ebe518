package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZacxDev/itemsort/config"
	"github.com/ZacxDev/itemsort/fs"
	"github.com/ZacxDev/itemsort/report"
	"github.com/ZacxDev/itemsort/runner"
	"github.com/ZacxDev/itemsort/sorter"
)

const defaultConfigFile = "itemsort.yaml"

type app struct {
	fs      fs.FileSystem
	v       *viper.Viper
	cfgFile string
}

func newRootCmd(filesystem fs.FileSystem) *cobra.Command {
	a := &app{fs: filesystem, v: viper.New()}
	config.SetDefaults(a.v)
	a.v.SetEnvPrefix("ITEMSORT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:               "itemsort",
		Short:             "Order items so that every item comes after its dependencies",
		SilenceUsage:      true,
		PersistentPreRunE: a.readConfig,
	}
	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ./"+defaultConfigFile+" when present)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")
	_ = a.v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(a.newRunCmd(), a.newSortCmd())
	return rootCmd
}

// readConfig merges the config file, if any, under flags and environment.
// The file is read through the injected file system.
func (a *app) readConfig(cmd *cobra.Command, args []string) error {
	path := a.cfgFile
	if path == "" {
		if _, err := a.fs.Stat(defaultConfigFile); err != nil {
			return nil
		}
		path = defaultConfigFile
	}

	data, err := a.fs.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	a.v.SetConfigType("yaml")
	if err := a.v.ReadConfig(bytes.NewReader(data)); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return nil
}

func (a *app) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every scenario and report whether each produced the expected result",
		Args:  cobra.NoArgs,
		RunE:  a.run,
	}
	cmd.Flags().StringP("scenarios", "s", config.DefaultScenarioPattern, "glob of scenario files, ** and {a,b} allowed")
	cmd.Flags().Bool("tui", false, "browse the results interactively")
	cmd.Flags().StringP("output", "o", "", "write the report to this file instead of stdout")
	_ = a.v.BindPFlag("scenarios", cmd.Flags().Lookup("scenarios"))
	_ = a.v.BindPFlag("tui", cmd.Flags().Lookup("tui"))
	_ = a.v.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings(a.v)
	if err != nil {
		return err
	}
	logger := runner.NewLogger(settings.LogLevel, settings.LogFormat, cmd.ErrOrStderr())

	scenarios, err := config.LoadScenarios(a.fs, settings.Scenarios)
	if err != nil {
		return err
	}
	if len(scenarios) == 0 {
		return errors.Errorf("no scenario files match %s", settings.Scenarios)
	}
	logger.Debug("loaded scenarios", "count", len(scenarios), "pattern", settings.Scenarios)

	results, runErr := runner.New(logger).Run(scenarios)

	if settings.TUI {
		p := tea.NewProgram(report.NewBrowser(results), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return errors.Wrap(err, "failed to run results browser")
		}
		return runErr
	}

	text := report.Render(results)
	if settings.Output == "" {
		fmt.Fprint(cmd.OutOrStdout(), text)
		return runErr
	}

	if err := a.fs.MkdirAll(filepath.Dir(settings.Output), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", settings.Output)
	}
	if err := a.fs.WriteFile(settings.Output, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, "failed to write report %s", settings.Output)
	}
	logger.Info("report written", "path", settings.Output)

	return runErr
}

func (a *app) newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort FILE",
		Short: "Sort the items of one scenario file and print their payloads in order",
		Args:  cobra.ExactArgs(1),
		RunE:  a.sort,
	}
}

func (a *app) sort(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings(a.v)
	if err != nil {
		return err
	}
	logger := runner.NewLogger(settings.LogLevel, settings.LogFormat, cmd.ErrOrStderr())

	scenario, err := config.LoadScenario(a.fs, args[0])
	if err != nil {
		return err
	}

	sorted, err := sorter.Sort(scenario.Items)
	if err != nil {
		return errors.Wrapf(err, "failed to sort %s", args[0])
	}
	logger.Debug("sorted scenario", "scenario", scenario.Name, "items", len(sorted))

	out := cmd.OutOrStdout()
	for _, it := range sorted {
		fmt.Fprintln(out, it.Payload())
	}
	return nil
}
