package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCMD = &cobra.Command{
	Use:   "recouvra",
	Short: "Multi-store daily cash-recovery tracking",
	Long: `recouvra tracks daily cash recoveries across stores: expected versus
recovered amounts, expenses, and the resulting gap. It serves the dashboard
API and exports monthly reports as CSV.`,
}

func Execute() {
	err := rootCMD.Execute()
	if err != nil {
		os.Exit(1)
	}
}
