package adapters

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/Sena-ops/spotfix/internal/model"
)

// Padrão dos registros de bug no main.html do SpotBugs: tipo de bug,
// classe, método, arquivo fonte e linha, tolerando marcação arbitrária
// entre os grupos (inclusive quebras de linha). Extração best-effort:
// registro que não casa por inteiro é descartado em silêncio. O token do
// tipo aceita dígitos porque tipos como EI_EXPOSE_REP2 terminam em um.
var bugEntry = regexp.MustCompile(`(?s)Bug type ([A-Z0-9_]+).*?In class ([^\s<]+).*?In method ([^\s<]+).*?At ([^:]+\.java):\[line (\d+)\]`)

// ReportPath monta o caminho convencional do relatório gerado pelo plugin
// do Gradle: <root>/<módulo>/build/reports/spotbugs/main.html.
func ReportPath(projectRoot, module string) string {
	return filepath.Join(projectRoot, module, "build", "reports", "spotbugs", "main.html")
}

// ParseSpotBugsBytes extrai os achados de um relatório HTML do SpotBugs,
// na ordem em que aparecem no documento.
func ParseSpotBugsBytes(b []byte) []model.Finding {
	matches := bugEntry.FindAllStringSubmatch(string(b), -1)

	out := make([]model.Finding, 0, len(matches))
	for _, m := range matches {
		line, err := strconv.Atoi(m[5])
		if err != nil {
			continue
		}
		out = append(out, model.Finding{
			BugType:     m[1],
			ClassName:   m[2],
			MethodName:  m[3],
			FilePath:    filepath.ToSlash(m[4]),
			Line:        line,
			Severity:    model.SeverityOf(m[1]),
			Description: fmt.Sprintf("%s in %s.%s", m[1], m[2], m[3]),
		})
	}
	return out
}

// ParseSpotBugsFile lê e extrai os achados do relatório. Relatório
// inexistente não é erro: significa "nada a fazer" e devolve lista vazia.
func ParseSpotBugsFile(path string) ([]model.Finding, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler relatório: %w", err)
	}
	return ParseSpotBugsBytes(b), nil
}
