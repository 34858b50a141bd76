package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/billup/billup-web/pkg/env"
)

func main() {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "billup-web",
		Short:         "BillUp web front end",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return env.LoadFile(envFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file merged into the environment")

	rootCmd.AddCommand(
		serveCmd(),
		tokenCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
