package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/runger/fancyrun/which"
)

var whichCmd = &cobra.Command{
	Use:          "which <name>",
	Short:        "Resolve an executable to its absolute path",
	Args:         cobra.ExactArgs(1),
	RunE:         executeWhich,
	SilenceUsage: true,
}

func init() {
	whichCmd.Flags().String("path", "", "Search this path list instead of $PATH")
}

func executeWhich(cmd *cobra.Command, args []string) error {
	searchPath, _ := cmd.Flags().GetString("path")

	var (
		resolved string
		err      error
	)
	if searchPath != "" {
		resolved, err = which.FindIn(args[0], searchPath)
	} else {
		resolved, err = which.Find(args[0])
	}
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			fmt.Fprintln(os.Stderr, styleWarning.Render(fmt.Sprintf("%s not found", args[0])))
			return &ExitError{Code: ExitFailure, Message: err.Error()}
		}
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	fmt.Println(styleSuccess.Render(resolved))
	return nil
}
