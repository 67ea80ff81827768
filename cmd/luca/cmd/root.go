// Package cmd wires up the luca command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xfalafel/luca"
	"github.com/0xfalafel/luca/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "luca",
	Short: "luca is a notepad calculator",
	Long: `luca evaluates arithmetic line by line: plain numbers, money
amounts (22€, $33), variables, and assignments that flow down the page.

Run it bare for a prompt, "luca tui" for the two-pane notepad, or
"luca eval" for one-shot evaluation.`,
	RunE:          runREPL,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: "+config.DefaultPath()+")")
}

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// envOptions turns a config into environment options: the plural fallback
// switch plus every preset variable, each given as an expression.
func envOptions(cfg *config.Config) ([]luca.EnvOption, error) {
	opts := []luca.EnvOption{luca.PluralFallback(cfg.PluralFallback)}
	if len(cfg.Variables) == 0 {
		return opts, nil
	}
	vars := make(map[string]luca.Value, len(cfg.Variables))
	scratch := luca.NewEnvironment()
	for name, src := range cfg.Variables {
		e, err := luca.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("config variable %s: %w", name, err)
		}
		v, err := e.Eval(scratch)
		if err != nil {
			return nil, fmt.Errorf("config variable %s: %w", name, err)
		}
		vars[name] = v
	}
	return append(opts, luca.SetVars(vars)), nil
}
