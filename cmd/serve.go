package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fete/internal/bridge"
	"fete/internal/config"
	"fete/internal/logging"

	"github.com/spf13/cobra"
)

var (
	flagServeAddr  string
	flagServeToken string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Share the local workbook over HTTP",
	Long: "Serve hosts the workbook behind the sheet endpoints that bridge mode\n" +
		"expects, so a dashboard on another machine can plan against this one:\n" +
		"set FETE_BRIDGE_URL there to this address.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "127.0.0.1:8787", "HTTP listen address")
	serveCmd.Flags().StringVar(&flagServeToken, "token", "", "Require this bearer token (default: FETE_SHEET_TOKEN)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	logging.Setup()

	gw, mode, cleanup, err := openGateway(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if mode == "bridge" {
		return errors.New("this machine already follows a bridge; `fete serve` shares a local workbook")
	}

	token := flagServeToken
	if token == "" {
		token = config.GetSheetToken(cfg)
	}

	srv := bridge.New(bridge.Config{Addr: flagServeAddr, Token: token}, gw)

	fmt.Printf("  Serving the %s sheet on http://%s\n", mode, flagServeAddr)
	if token != "" {
		fmt.Println("  Clients must send the matching token.")
	} else {
		fmt.Println("  No token set: anyone who can reach this address can edit the plan.")
	}
	fmt.Println("  Stop with Ctrl-C.")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
