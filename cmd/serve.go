package main

import (
	"github.com/DanRulev/vocadeck/internal/transport/rest"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			a.cfg.HTTP.Addr = addr
		}

		handler := rest.NewHandler(a.services, a.db, a.cfg.HTTP.MaxUpload, a.log)
		router := rest.NewRouter(a.cfg.HTTP, a.cfg.Env, handler, a.log)

		return rest.NewServer(a.cfg.HTTP, router, a.log).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address, overrides http.addr")
	rootCmd.AddCommand(serveCmd)
}
