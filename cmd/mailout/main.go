package main

import (
	"github.com/spf13/cobra"

	"github.com/sandren/mailout/cmd/mailout/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
