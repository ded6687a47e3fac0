// Command blog runs the blog API.
//
//	blog serve    serve HTTP, or API Gateway events when running on Lambda
//	blog migrate  apply the embedded database schema and exit
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "blog",
		Short:        "Blog API service",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
