package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var serverPort int

var serverCMD = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Long:  `Start the HTTP API server that backs the recovery dashboard.`,
	Run: func(cmd *cobra.Command, args []string) {
		apiHandler, err := InitializeDependencies()
		if err != nil {
			log.Fatal(err)
		}
		defer CloseDependencies(apiHandler)

		if err := apiHandler.StartApi(serverPort); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	},
}

func init() {
	serverCMD.Flags().IntVar(&serverPort, "port", 8080, "port to listen on")
	rootCMD.AddCommand(serverCMD)
}
