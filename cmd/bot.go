package main

import (
	"github.com/DanRulev/vocadeck/internal/bot"
	"github.com/DanRulev/vocadeck/internal/storage/cache"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		handler, err := bot.NewTelegramAPI(a.cfg, a.services, cache.NewCache(), a.log)
		if err != nil {
			a.log.Error("failed init telegram bot", zap.Error(err))
			return err
		}

		go func() {
			<-ctx.Done()
			a.log.Info("stopping telegram bot")
			handler.Stop()
		}()

		handler.Start()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
}
