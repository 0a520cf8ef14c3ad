// Command lexgap is the format-translation utility of §6: it rewrites the
// classification files lextet produced for a given vertex count into GAP
// array syntax.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mobius-tri/lextet/config"
	"github.com/mobius-tri/lextet/translate"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lexgap:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:           "lexgap",
		Short:         "Translate lextet's .lex classification files to GAP array syntax",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(os.Stderr, "Enter integer representing the number of vertices in the triangulations to be converted")

			reader := bufio.NewReader(os.Stdin)
			var nv int
			if _, err := fmt.Fscan(reader, &nv); err != nil {
				return fmt.Errorf("%w: reading NV from stdin: %v", config.ErrArgument, err)
			}
			return translate.Run(dir, nv, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "directory containing .lex files")
	return cmd
}
