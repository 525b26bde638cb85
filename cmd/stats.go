package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/DanRulev/vocadeck/internal/repository"
	"github.com/DanRulev/vocadeck/internal/service"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print learning statistics and weak words",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		langFlag, _ := cmd.Flags().GetString("language")

		langs := models.Languages
		if langFlag != "" {
			lang, err := models.ParseLanguage(langFlag)
			if err != nil {
				return err
			}
			langs = []models.Language{lang}
		}

		_, logger, conn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()
		defer logger.Sync()

		repos := repository.NewRepository(conn)
		stats := service.NewStatsService(repos, logger)

		for _, lang := range langs {
			summary, err := stats.Summary(ctx, lang)
			if err != nil {
				return err
			}
			weak, err := stats.WeakWords(ctx, lang)
			if err != nil {
				return err
			}
			if err := printSummary(cmd.OutOrStdout(), summary, weak); err != nil {
				return err
			}
		}

		return nil
	},
}

func printSummary(out io.Writer, summary models.Summary, weak []models.WordRecord) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "%s\n", summary.Language)
	fmt.Fprintf(w, "  words\t%d\n", summary.Stats.TotalWords)
	fmt.Fprintf(w, "  mastered\t%d\n", summary.Stats.MasteredWords)
	fmt.Fprintf(w, "  correct / wrong\t%d / %d\n", summary.Stats.TotalCorrect, summary.Stats.TotalWrong)
	fmt.Fprintf(w, "  accuracy\t%.1f%%\n", summary.Accuracy)

	if len(weak) > 0 {
		fmt.Fprintf(w, "  weak words\t%d\n", len(weak))
		lo.ForEach(weak, func(r models.WordRecord, _ int) {
			fmt.Fprintf(w, "    %s\t%s\t%.0f%%\n", r.Word, r.Translation, r.Accuracy())
		})
	}
	fmt.Fprintln(w)

	return w.Flush()
}

func init() {
	statsCmd.Flags().StringP("language", "l", "", "russian or chinese, all languages when empty")
	rootCmd.AddCommand(statsCmd)
}
