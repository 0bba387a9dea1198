package fixer

import (
	"os"
	"path/filepath"

	"github.com/Sena-ops/spotfix/internal/model"
)

// Fixer aplica correções mecânicas nos fontes apontados pelos achados,
// sempre relativo ao project root. As duas listas acumulam o texto exibido
// no resumo de fim de execução.
type Fixer struct {
	projectRoot string

	FixesApplied []string // correções aplicadas, na ordem
	ManualReview []string // orientações para revisão manual, na ordem
}

func New(projectRoot string) *Fixer {
	return &Fixer{projectRoot: projectRoot}
}

// Stats é a contagem de três vias do passo de correção.
type Stats struct {
	Fixed        int
	ManualReview int
	Skipped      int
}

// FixAll aplica a transformação registrada de cada achado, na ordem do
// relatório. Achado de tipo sem transformação conta como ignorado; os
// tipos de revisão manual contam como revisão manual mesmo reportando
// sempre "não corrigido". Nenhuma transformação depende do resultado das
// anteriores, então as contagens independem da ordem.
func (fx *Fixer) FixAll(findings []model.Finding) Stats {
	var stats Stats
	for _, f := range findings {
		switch {
		case fx.apply(f):
			stats.Fixed++
		case manualReviewKinds[f.BugType]:
			stats.ManualReview++
		default:
			stats.Skipped++
		}
	}
	return stats
}

func (fx *Fixer) targetPath(f model.Finding) string {
	return filepath.Join(fx.projectRoot, filepath.FromSlash(f.FilePath))
}

// readTarget lê o fonte alvo por inteiro. Arquivo inexistente ou ilegível
// devolve ok=false: o achado conta como não corrigido, sem falha global.
func readTarget(path string) (string, bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(b), true
}

// writeTarget regrava o fonte no lugar (sem backup, sem rename atômico).
func writeTarget(path, content string) bool {
	return os.WriteFile(path, []byte(content), 0o644) == nil
}
