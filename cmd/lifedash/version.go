// ABOUTME: CLI command printing the lifedash version.
// ABOUTME: Runs without opening storage.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lifedash version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lifedash %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
