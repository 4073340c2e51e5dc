// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "suitesync",
	Short: "SuiteSync indexes NetSuite records into a Glean datasource",
	Long: `SuiteSync synchronizes NetSuite business records (invoices, bills,
purchase orders, opportunities, estimates, sales orders, items, vendors and
customers) into a Glean search datasource, resolving per-record access from
NetSuite role permissions.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
