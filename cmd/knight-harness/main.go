package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/knight-lang/knight-go/harness"
)

func main() {
	var (
		pattern string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "knight-harness",
		Short: "Conformance harness for the Knight interpreter",
	}

	runCmd := &cobra.Command{
		Use:   "run <suite-files-or-dirs>...",
		Short: "Run YAML test suites",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(harness.Run(harness.Config{
				TestPaths:   args,
				NamePattern: pattern,
				Output:      os.Stdout,
				ErrOutput:   os.Stderr,
				Verbose:     verbose,
			}))
		},
	}
	runCmd.Flags().StringVarP(&pattern, "pattern", "p", "", "only run tests whose full name matches this regexp")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list passing tests too")

	listCmd := &cobra.Command{
		Use:   "list <suite-files-or-dirs>...",
		Short: "List test case names without running them",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(harness.List(harness.Config{
				TestPaths:   args,
				NamePattern: pattern,
				Output:      os.Stdout,
				ErrOutput:   os.Stderr,
			}))
		},
	}
	listCmd.Flags().StringVarP(&pattern, "pattern", "p", "", "only list tests whose full name matches this regexp")

	root.AddCommand(runCmd, listCmd)
	if err := root.Execute(); err != nil {
		os.Exit(2)
	}
}
