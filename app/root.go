// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ponto-de-aula",
	Short: "Ponto de Aula is a web client for the Ponto de Aula platform",
	Long: `Ponto de Aula is a web client for the Ponto de Aula platform
that provides a role-gated post feed and user management screens
on top of the Ponto de Aula REST backend.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
