package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the released version of dbexport.
const Version = "0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("dbexport version", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
