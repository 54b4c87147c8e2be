package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/log"
	"folio/internal/tui"
)

var version = "dev"

// Entry point for the application
func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:     "folio [directory]",
		Short:   "A terminal editor for transcribing paginated scans",
		Long:    `Folio edits a directory of numbered page files (000.txt, 001.txt, ...), one page at a time, with modal keys tuned for transcription work.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				return err
			}

			if len(args) > 0 {
				cfg.Directories.Default = args[0]
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			if err := log.Init(cfg.Log.File, cfg.Log.Level); err != nil {
				return fmt.Errorf("cannot open log file: %w", err)
			}

			m, err := tui.New(cfg, version)
			if err != nil {
				return err
			}

			// The alternate screen and raw mode are entered here and
			// restored by bubbletea on exit, including on error unwind.
			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("terminal failure: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/folio/config.yaml)")
	return rootCmd
}
