package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wcfrobert/wthisj/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wthisj",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wthisj v%s\n", version.Version)
		fmt.Println("Punching Shear Stress Analysis")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
