package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/Sapuran-Berperan/inventory-console/internal/config"
	"github.com/Sapuran-Berperan/inventory-console/internal/grid"
	"github.com/Sapuran-Berperan/inventory-console/internal/highlight"
	"github.com/Sapuran-Berperan/inventory-console/internal/render/term"
	"github.com/Sapuran-Berperan/inventory-console/internal/repository"
	"github.com/Sapuran-Berperan/inventory-console/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if exists
	_ = godotenv.Load()
	cfg := config.Load()

	var (
		apiURL    string
		themeName string
		token     string
		limit     int
		logOutput string
	)

	flagSet := pflag.NewFlagSet("console-tui", pflag.ContinueOnError)
	flagSet.StringVar(&apiURL, "api", cfg.APIBaseURL, "inventory backend base URL")
	flagSet.StringVar(&themeName, "theme", "dark", "colour theme: dark or light")
	flagSet.StringVar(&token, "token", os.Getenv("API_TOKEN"), "bearer token sent to the backend")
	flagSet.IntVar(&limit, "limit", cfg.PageLimit, "rows per page")
	flagSet.StringVar(&logOutput, "log-output", "", "write log output to this file instead of discarding it")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
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
	if themeName != "dark" && themeName != "light" {
		return fmt.Errorf("invalid --theme %q: must be dark or light", themeName)
	}

	// The terminal belongs to the UI while it runs
	if logOutput != "" {
		f, err := tea.LogToFile(logOutput, "console-tui")
		if err != nil {
			return fmt.Errorf("open log output: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	client, err := repository.New(apiURL, cfg.APITimeout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if token != "" {
		ctx = repository.WithCredentials(ctx, repository.Credentials{Authorization: "Bearer " + token})
	}

	highlighter := highlight.New(highlight.Config{
		Theme:      highlight.ParseTheme(themeName),
		DarkColor:  cfg.HighlightDarkColor,
		LightColor: cfg.HighlightLightColor,
	})
	model := tui.New(ctx,
		grid.ComputerSource{API: client},
		grid.TicketSource{API: client},
		term.New(highlighter),
		limit,
	)

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Inventory console: browse computers and tickets from the terminal.

Usage:
  console-tui [flags]

Keys:
  /        search computers (enter to submit, esc to cancel)
  1-4      toggle ticket status filters (open, closed, in-progress, awaiting)
  n / p    next / previous page
  r        reload the current grid
  tab      switch between computers and tickets
  q        quit

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
