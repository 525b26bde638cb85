package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/DanRulev/vocadeck/internal/extract"
	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>",
	Short: "Extract and translate the vocabulary of a document into CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		langFlag, _ := cmd.Flags().GetString("language")
		out, _ := cmd.Flags().GetString("out")

		lang, err := models.ParseLanguage(langFlag)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed read document: %w", err)
		}

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		set, err := a.services.Ingest(ctx, lang, extract.Document{
			Name:     filepath.Base(args[0]),
			MIMEType: mime.TypeByExtension(filepath.Ext(args[0])),
			Data:     data,
		}, func(done, total int) {
			if done%25 == 0 || done == total {
				a.log.Info("translating", zap.Int("done", done), zap.Int("total", total))
			}
		})
		if err != nil {
			return err
		}

		csvData, err := set.CSV()
		if err != nil {
			return err
		}

		if out == "" || out == "-" {
			_, err = cmd.OutOrStdout().Write(csvData)
			return err
		}
		if err := os.WriteFile(out, csvData, 0o644); err != nil {
			return fmt.Errorf("failed write csv: %w", err)
		}

		a.log.Info("vocabulary written",
			zap.String("file", out), zap.Int("words", len(set)), zap.Int("untranslated", len(set.Failed())))
		return nil
	},
}

func init() {
	ingestCmd.Flags().StringP("language", "l", string(models.Russian), "document language: russian or chinese")
	ingestCmd.Flags().StringP("out", "o", "", "CSV output file, stdout when empty")
	rootCmd.AddCommand(ingestCmd)
}
