package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0xfalafel/luca"
)

var (
	evalGiven []string
	evalFile  string
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression...]",
	Short: "Evaluate expressions without the interactive surface",
	Long: `Evaluates each argument as one line, sharing an environment so
earlier assignments are visible later:

  luca eval "price = 3" "price * 2"

With --file, the file is evaluated as a whole buffer, one result line
per input line.`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringArrayVar(&evalGiven, "given", nil, "preset variable, name=expression (repeatable)")
	evalCmd.Flags().StringVarP(&evalFile, "file", "f", "", "evaluate a file as a buffer")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := envOptions(cfg)
	if err != nil {
		return err
	}
	for _, g := range evalGiven {
		name, src, ok := strings.Cut(g, "=")
		if !ok {
			return fmt.Errorf("bad --given %q, want name=expression", g)
		}
		v, err := given(strings.TrimSpace(src))
		if err != nil {
			return fmt.Errorf("--given %s: %w", strings.TrimSpace(name), err)
		}
		opts = append(opts, luca.SetVar(strings.TrimSpace(name), v))
	}

	if evalFile != "" {
		data, err := os.ReadFile(evalFile)
		if err != nil {
			return err
		}
		text := strings.TrimRight(string(data), "\n")
		fmt.Println(luca.SolveBuffer(text, opts...))
		return nil
	}

	if len(args) == 0 {
		return errors.New("nothing to evaluate")
	}
	env := luca.NewEnvironment(opts...)
	for _, a := range args {
		out, err := luca.Solve(a, env)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}
	return nil
}

func given(src string) (luca.Value, error) {
	e, err := luca.Parse(src)
	if err != nil {
		return luca.Value{}, err
	}
	return e.Eval(luca.NewEnvironment())
}
