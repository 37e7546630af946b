// Package serve runs the HTTP API server
package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/api"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"

	"github.com/spf13/cobra"
)

var addr string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the expense API over HTTP",
	Long: `Serve the expense API over HTTP. Raw expense text posted to
/api/expenses is interpreted and stored; stored expenses can be listed,
updated, deleted and summarized by category.`,
	RunE: serveFunc,
}

func init() {
	Cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides server.addr)")
}

func serveFunc(cmd *cobra.Command, args []string) error {
	c, err := root.NewContainer(container.Options{})
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close container")
		}
	}()

	listenAddr := c.GetConfig().Server.Addr
	if addr != "" {
		listenAddr = addr
	}

	server := api.NewServer(listenAddr, c.GetInterpreter(), c.GetStorage(), root.Log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		root.Log.Info("Shutting down",
			logging.Field{Key: "signal", Value: sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
