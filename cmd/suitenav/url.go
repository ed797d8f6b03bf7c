package main

import (
	"fmt"

	"github.com/ghiac/suitenav/navurl"
	"github.com/spf13/cobra"
)

var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the absolute URL for a navigation context",
	Example: `  suitenav url --host cdap.example.com:11011 --namespace default --app PurchaseHistory
  suitenav url --protocol https --host cdap.example.com --target-app login --redirect-url /cask-cdap --strict`,
	Args: cobra.NoArgs,
	RunE: runURL,
}

var (
	urlProtocol string
	urlHost     string
	urlStrict   bool
	urlContext  navurl.NavigationContext
)

func init() {
	f := urlCmd.Flags()
	f.StringVar(&urlProtocol, "protocol", "http:", "origin protocol, colon optional")
	f.StringVar(&urlHost, "host", "localhost:11011", "origin host[:port]")
	f.BoolVar(&urlStrict, "strict", false, "build a well-formed URL with a proper query string")
	f.StringVar(&urlContext.TargetApp, "target-app", "", "destination app (default cask-cdap)")
	f.StringVar(&urlContext.RedirectURL, "redirect-url", "", "redirect URL, percent-encoded into the result")
	f.StringVar(&urlContext.ClientID, "client-id", "", "client id")
	f.StringVar(&urlContext.NamespaceID, "namespace", "", "namespace id")
	f.StringVar(&urlContext.AppID, "app", "", "application id")
	f.StringVar(&urlContext.EntityType, "entity-type", "", "entity type, used together with --entity-id")
	f.StringVar(&urlContext.EntityID, "entity-id", "", "entity id, used together with --entity-type")
	f.StringVar(&urlContext.RunID, "run", "", "run id")
	rootCmd.AddCommand(urlCmd)
}

func runURL(cmd *cobra.Command, args []string) error {
	origin := navurl.Origin{Protocol: navurl.NormalizeProtocol(urlProtocol), Host: urlHost}
	fmt.Fprintln(cmd.OutOrStdout(), navurl.Build(&urlContext, origin, urlStrict))
	return nil
}
