package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Sena-ops/spotfix/internal/adapters"
	"github.com/Sena-ops/spotfix/internal/logging"
	"github.com/Sena-ops/spotfix/internal/model"
	"github.com/Sena-ops/spotfix/internal/sarif"
	"github.com/spf13/cobra"
)

// Diretório onde os exports ficam guardados, na raiz de execução.
const sarifOutDir = ".spotfix"

var filterTypes string
var outputFormat string
var saveSarif bool

// FindingOut é a forma serializada de um achado na saída -o json.
type FindingOut struct {
	BugType     string `json:"bugType"`
	ClassName   string `json:"className"`
	MethodName  string `json:"methodName"`
	File        string `json:"file"`
	Line        int    `json:"line"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

var listCmd = &cobra.Command{
	Use:   "list [módulo]",
	Short: "Lista os achados extraídos do relatório do SpotBugs",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(debugMode)
		defer logging.Logger.Sync()
		logger := logging.Logger

		module := moduleArg(args)
		reportPath := adapters.ReportPath(projectRoot, module)
		logger.Infof("Lendo relatório: %s", reportPath)

		findings, err := adapters.ParseSpotBugsFile(reportPath)
		if err != nil {
			logger.Errorw("Erro ao ler o relatório", "erro", err)
			os.Exit(1)
		}
		if len(findings) == 0 {
			logger.Infof("Nenhum achado no relatório (ou relatório ausente): %s", reportPath)
			return
		}

		allowedTypes := map[string]bool{}
		if filterTypes != "" {
			for _, t := range splitAndTrim(filterTypes) {
				allowedTypes[t] = true
			}
			logger.Debugf("Tipos filtrados: %v", allowedTypes)
		}

		selected := make([]model.Finding, 0, len(findings))
		for _, f := range findings {
			if len(allowedTypes) > 0 && !allowedTypes[strings.ToLower(f.BugType)] {
				continue
			}
			selected = append(selected, f)
		}
		sarif.SortFindings(selected)

		switch strings.ToLower(outputFormat) {
		case "json":
			out := make([]FindingOut, 0, len(selected))
			for _, f := range selected {
				out = append(out, FindingOut{
					BugType:     f.BugType,
					ClassName:   f.ClassName,
					MethodName:  f.MethodName,
					File:        f.FilePath,
					Line:        f.Line,
					Severity:    string(f.Severity),
					Description: f.Description,
				})
			}
			encoded, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				logger.Errorw("Erro ao gerar JSON", "erro", err)
				os.Exit(1)
			}
			fmt.Println(string(encoded))

		case "markdown":
			var builder strings.Builder
			builder.WriteString("## 📋 Achados do SpotBugs\n\n")
			for bugType, group := range groupByType(selected) {
				builder.WriteString(fmt.Sprintf("### %s (%d achado(s))\n", bugType, len(group)))
				for _, f := range group {
					builder.WriteString(fmt.Sprintf("- %s:%d (%s.%s)\n", f.FilePath, f.Line, f.ClassName, f.MethodName))
				}
				builder.WriteString("\n")
			}
			fmt.Println(builder.String())

		case "sarif":
			encoded, err := json.MarshalIndent(sarif.Build(selected, "SpotFix", Version), "", "  ")
			if err != nil {
				logger.Errorw("Erro ao gerar SARIF", "erro", err)
				os.Exit(1)
			}
			fmt.Println(string(encoded))

		default:
			logger.Infof("✅ Achados por tipo:")
			for bugType, group := range groupByType(selected) {
				fmt.Printf("- %s [%s]: %d achado(s)\n", bugType, model.SeverityOf(bugType), len(group))
				for _, f := range group {
					fmt.Printf("    • %s:%d %s.%s\n", f.FilePath, f.Line, f.ClassName, f.MethodName)
				}
			}
		}

		if saveSarif {
			outPath, err := sarif.Export(selected, sarifOutDir, module+"-findings", "SpotFix", Version)
			if err != nil {
				logger.Errorw("Erro ao salvar SARIF", "erro", err)
				os.Exit(1)
			}
			logger.Infow("SARIF salvo com sucesso", "arquivo", outPath)
		}
	},
}

func init() {
	listCmd.Flags().StringVarP(&filterTypes, "filter", "f", "", "Filtra os tipos de bug desejados (ex: ei_expose_rep,rv_return_value_ignored_bad_practice)")
	listCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Formato da saída (json, markdown, sarif)")
	listCmd.Flags().BoolVar(&saveSarif, "save", false, "Grava o export SARIF em "+sarifOutDir)
	rootCmd.AddCommand(listCmd)
}

func groupByType(findings []model.Finding) map[string][]model.Finding {
	grouped := map[string][]model.Finding{}
	for _, f := range findings {
		grouped[f.BugType] = append(grouped[f.BugType], f)
	}
	return grouped
}

func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(strings.ToLower(part))
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
