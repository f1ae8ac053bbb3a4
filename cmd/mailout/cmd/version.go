package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandren/mailout/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mailout version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", version.Product, version.Semver)
	},
}
