package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ib-77/fluentutils/internal/config"
)

var (
	// Version information (set at build time)
	Version = "dev"
	Commit  = "none"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fluentutils",
		Short: "Railway-oriented results and request pipelines for Go",
		Long: `fluentutils demonstrates the monad result type and the request pipeline.

  fluentutils people --count 25 --limit 10 --offset 10`,
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newPeopleCommand())

	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
