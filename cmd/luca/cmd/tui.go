package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/0xfalafel/luca/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the two-pane notepad",
	Long: `Opens the notepad surface: expressions on the left, their values
aligned line by line on the right, recomputed as you type.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := envOptions(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(opts...), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
