package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Sena-ops/spotfix/internal/adapters"
	"github.com/Sena-ops/spotfix/internal/fixer"
	"github.com/Sena-ops/spotfix/internal/logging"
	"github.com/spf13/cobra"
)

// Módulo Gradle usado quando nenhum é passado na linha de comando.
const defaultModule = "core"

var fixCmd = &cobra.Command{
	Use:   "fix [módulo]",
	Short: "Analisa o relatório do SpotBugs e aplica correções automáticas",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(debugMode)
		defer logging.Logger.Sync()
		logger := logging.Logger

		module := moduleArg(args)
		reportPath := adapters.ReportPath(projectRoot, module)

		logger.Infof("🔍 Analisando relatório SpotBugs: %s", reportPath)
		fmt.Println(strings.Repeat("=", 70))

		findings, err := adapters.ParseSpotBugsFile(reportPath)
		if err != nil {
			logger.Errorw("Erro ao ler o relatório", "erro", err)
			os.Exit(1)
		}

		if len(findings) == 0 {
			fmt.Println("✅ Nenhum achado do SpotBugs ou relatório indisponível.")
			fmt.Printf("   Rode: ./gradlew :%s:spotbugsMain\n", module)
			return
		}

		fmt.Printf("📋 %d achado(s) no relatório:\n", len(findings))
		for _, f := range findings {
			fmt.Printf("   - %s: %s.%s (%s:%d)\n", f.BugType, f.ClassName, f.MethodName, f.FilePath, f.Line)
		}

		fmt.Println("\n🔧 Tentando correções automáticas...")
		fmt.Println(strings.Repeat("=", 70))

		fx := fixer.New(projectRoot)
		stats := fx.FixAll(findings)

		fmt.Printf("\n✅ Corrigidos: %d\n", stats.Fixed)
		fmt.Printf("⚠️  Revisão manual: %d\n", stats.ManualReview)
		fmt.Printf("⏭️  Ignorados: %d\n", stats.Skipped)

		if len(fx.FixesApplied) > 0 {
			fmt.Println("\n📝 Correções aplicadas:")
			for _, applied := range fx.FixesApplied {
				fmt.Printf("   ✓ %s\n", applied)
			}
		}

		if len(fx.ManualReview) > 0 {
			fmt.Println("\n⚠️  Revisão manual necessária:")
			for _, item := range fx.ManualReview {
				fmt.Printf("   • %s\n", item)
			}
		}

		fmt.Println("\n" + strings.Repeat("=", 70))
		fmt.Println("💡 Próximos passos:")
		fmt.Printf("   1. Revise as mudanças: git diff %s/src/main/java\n", module)
		fmt.Printf("   2. Rode os testes: ./gradlew :%s:test\n", module)
		fmt.Printf("   3. Gere o relatório de novo: ./gradlew :%s:spotbugsMain\n", module)
		fmt.Println("   4. Commit das correções se os testes passarem")

		// Falha só quando nada foi corrigido e sobrou revisão manual.
		if stats.Fixed == 0 && stats.ManualReview > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(fixCmd)
}

func moduleArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultModule
}
