package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/0xfalafel/luca"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate expressions interactively",
	Long: `Starts a prompt with line editing, history, and tab completion
over the variables defined so far. Type "exit" or Ctrl+D to leave.`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := envOptions(cfg)
	if err != nil {
		return err
	}
	env := luca.NewEnvironment(opts...)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	// Complete the word under the cursor against the defined variables.
	line.SetCompleter(func(input string) []string {
		cut := strings.LastIndexAny(input, " \t(+-*/=")
		head, word := input[:cut+1], input[cut+1:]
		var out []string
		for _, name := range env.Names() {
			if strings.HasPrefix(name, word) {
				out = append(out, head+name)
			}
		}
		return out
	})

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		f, err := os.Create(cfg.HistoryFile)
		if err != nil {
			log.Printf("cannot save history: %v", err)
			return
		}
		line.WriteHistory(f)
		f.Close()
	}()

	for {
		input, err := line.Prompt(cfg.Prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Println("^C")
				continue
			}
			if err == io.EOF {
				fmt.Println()
				return nil
			}
			return err
		}
		switch strings.TrimSpace(input) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		line.AppendHistory(input)
		out, err := luca.Solve(input, env)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(out)
	}
}
