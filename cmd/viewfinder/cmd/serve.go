package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/menta2k/viewfinder/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP server for the viewfinder API",
		Long: `Start an HTTP server answering preview selection and layout requests.

The server provides the following endpoints:
  POST /v1/best       - Select the best preview size
  POST /v1/place      - Place a scaled preview in the viewfinder
  POST /v1/layout     - Placement and scanning frame
  GET  /v1/strategies - List placement strategies
  GET  /health        - Health check endpoint
  GET  /metrics       - Prometheus metrics

Requests fall back to the configured display and camera for omitted fields.

Examples:
  viewfinder serve
  viewfinder serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			srv, err := server.New(a.cfg, reg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().String("addr", "", "listen address (default :8080)")
	cmd.Flags().Duration("read-timeout", 0, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", 0, "HTTP write timeout")
	a.bindFlags(cmd, map[string]string{
		"addr":          "server.addr",
		"read-timeout":  "server.read_timeout",
		"write-timeout": "server.write_timeout",
	})
	return cmd
}
