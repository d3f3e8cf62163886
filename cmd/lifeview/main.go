package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"lifeview/internal/app"
	"lifeview/internal/core"
	_ "lifeview/internal/engine/life"
	"lifeview/internal/log"
	"lifeview/internal/tui"
)

var (
	cfg        = app.NewConfig()
	configFile string
	logFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "lifeview",
		Short:             "interactive Game of Life viewer",
		Long:              "Runs a Life-like cellular automaton in the terminal. Use the gui subcommand for a desktop window.",
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
		RunE:              runTerminal,
	}
	cfg.Bind(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (the terminal is busy drawing)")

	rootCmd.AddCommand(guiCommand(), framesCommand(), enginesCommand(), configCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers the config file between the defaults and any flags
// given explicitly on the command line.
func loadConfig(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		explicit := map[string]string{}
		cmd.Flags().Visit(func(f *pflag.Flag) {
			explicit[f.Name] = f.Value.String()
		})
		if err := cfg.LoadFile(configFile); err != nil {
			return err
		}
		for name, value := range explicit {
			if err := cmd.Flags().Set(name, value); err != nil {
				return err
			}
		}
	}
	return cfg.Validate()
}

func runTerminal(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := terminalLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	model, err := tui.NewModel(cfg, logger)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

func terminalLogger() (*log.Logger, func(), error) {
	level, _ := log.ParseLevel(cfg.LogLevel)
	if logFile == "" {
		return log.New(io.Discard, log.LevelNone), func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, level), func() { f.Close() }, nil
}

func enginesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "list available engines",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range core.EngineNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
