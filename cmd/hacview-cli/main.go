package main

import (
	"fmt"
	"os"
	"time"

	"hacview-backend/lib/serviceutil"
	"hacview-backend/lib/telemetry"
	"hacview-backend/services/studentdata"

	"github.com/spf13/cobra"
)

var (
	flagBaseUrl  string
	flagUsername string
	flagPassword string
	flagTimeout  int
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "hacview-cli",
	Short: "Fetch a student's Home Access Center data from the terminal.",
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Log in to the portal and print profile, grades and schedule.",
	RunE: func(cmd *cobra.Command, args []string) error {
		telemetry.SetupSlog(flagVerbose)

		service := studentdata.NewService(studentdata.ServiceOptions{
			BaseUrl: flagBaseUrl,
			Timeout: time.Duration(flagTimeout) * time.Second,
		})

		ctx := serviceutil.SignalContext()
		data, err := service.Login(ctx, flagUsername, flagPassword)
		if err != nil {
			return fmt.Errorf("fetch student data: %w", err)
		}

		printData(data)
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&flagBaseUrl, "base-url", "https://hac.friscoisd.org", "Base url of the Home Access Center portal.")
	fetchCmd.Flags().StringVarP(&flagUsername, "username", "u", "", "Portal username.")
	fetchCmd.Flags().StringVarP(&flagPassword, "password", "p", "", "Portal password.")
	fetchCmd.Flags().IntVar(&flagTimeout, "timeout", 30, "Per-request timeout in seconds.")
	fetchCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging.")
	fetchCmd.MarkFlagRequired("username")
	fetchCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(fetchCmd)
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
