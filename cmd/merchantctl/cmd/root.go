// Package cmd provides the CLI commands for merchantctl.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

const (
	defaultServer  = "http://localhost:8080"
	serverEnv      = "MERCHANTCTL_SERVER"
	defaultTimeout = 30 * time.Second
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	server  string
	timeout time.Duration
	json    bool
}

func (o *globalOptions) client() *apiClient {
	return newAPIClient(o.server, o.timeout)
}

// NewRootCmd creates the root command for the merchantctl CLI.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "merchantctl",
		Short: "Command line client for the pincode serviceability directory",
		Long: `merchantctl talks to a running serviceability server.

It imports merchants from CSV files, asks which merchants service a set of
pincodes and prints the full record of one merchant.`,
		SilenceUsage: true,
	}

	server := os.Getenv(serverEnv)
	if server == "" {
		server = defaultServer
	}

	cmd.PersistentFlags().StringVar(&opts.server, "server", server, "Base URL of the serviceability server (env "+serverEnv+")")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", defaultTimeout, "Timeout for each HTTP request")
	cmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Print the response data as JSON")

	cmd.AddCommand(newImportCmd(opts))
	cmd.AddCommand(newQueryCmd(opts))
	cmd.AddCommand(newGetCmd(opts))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
