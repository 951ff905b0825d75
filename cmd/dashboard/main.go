// dashboard is the terminal view of the purchase table: ratio cards,
// selection, sorting and the capture/delete bulk actions, all through the
// gateway's /api/v1 endpoints.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"sourcing-planner/internal/dashboard"
	"sourcing-planner/internal/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var gateway, token, secret string

	flagSet := pflag.NewFlagSet("dashboard", pflag.ContinueOnError)
	flagSet.StringVar(&gateway, "gateway", envOr("PLANNER_GATEWAY", "http://localhost:8080"), "gateway base URL")
	flagSet.StringVar(&token, "token", os.Getenv("PLANNER_TOKEN"), "bearer token for /api/v1")
	flagSet.StringVar(&secret, "jwt-secret", os.Getenv("JWT_SECRET"), "mint a short-lived token with this secret when --token is empty")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	if token == "" && secret != "" {
		minted, _, err := utils.GenerateToken([]byte(secret), "dashboard", "", "operator", 12*time.Hour)
		if err != nil {
			return fmt.Errorf("mint token: %w", err)
		}
		token = minted
	}

	model := dashboard.NewModel(dashboard.NewHTTPClient(gateway, token))
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Purchase dashboard, an interactive terminal view of the purchase table.

Usage:
  dashboard [flags]

Keys: j/k move, space select, a select all, s sort column, o flip order,
c capture, x delete, r reload, q quit.

Flags:
`)
	flagSet.PrintDefaults()
}
