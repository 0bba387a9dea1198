package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Sena-ops/spotfix/internal/adapters"
	"github.com/Sena-ops/spotfix/internal/logging"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [módulo]",
	Short: "Mostra o cabeçalho do relatório e a contagem de achados por tipo",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(debugMode)
		defer logging.Logger.Sync()
		logger := logging.Logger

		module := moduleArg(args)
		reportPath := adapters.ReportPath(projectRoot, module)

		// Uma leitura só alimenta o resumo e a extração de achados.
		b, err := os.ReadFile(reportPath)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Infof("Relatório indisponível: %s", reportPath)
			fmt.Printf("   Rode: ./gradlew :%s:spotbugsMain\n", module)
			return
		}
		if err != nil {
			logger.Errorw("Erro ao ler o relatório", "erro", err)
			os.Exit(1)
		}

		resumo, err := adapters.Summarize(b)
		if err != nil {
			logger.Errorw("Erro ao resumir o relatório", "erro", err)
			os.Exit(1)
		}

		fmt.Printf("📄 %s\n", firstNonEmpty(resumo.Title, resumo.Heading, "(relatório sem título)"))
		if len(resumo.Metrics) > 0 {
			fmt.Println("\nMétricas do relatório:")
			for _, m := range resumo.Metrics {
				fmt.Printf("   %-28s %s\n", m.Label, m.Value)
			}
		}

		findings := adapters.ParseSpotBugsBytes(b)
		fmt.Printf("\n📋 Achados extraídos: %d\n", len(findings))
		for bugType, group := range groupByType(findings) {
			fmt.Printf("   - %s: %d\n", bugType, len(group))
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
