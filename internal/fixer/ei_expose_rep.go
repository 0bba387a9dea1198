package fixer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Sena-ops/spotfix/internal/model"
	"github.com/Sena-ops/spotfix/internal/parser"
)

const collectionsImport = "import java.util.Collections;"

// importLine casa uma linha de import Java completa, com o terminador.
var importLine = regexp.MustCompile(`import\s+[^;]+;\n`)

// fixEIExposeRep trata exposição de representação mutável em acessor de
// record que devolve Map: reescreve "return campo;" para devolver
// java.util.Collections.unmodifiableMap(campo) e garante o import de
// Collections. Só se aplica a fontes de record cujo acessor tem exatamente
// o corpo de um return simples.
func (fx *Fixer) fixEIExposeRep(f model.Finding) bool {
	path := fx.targetPath(f)
	content, ok := readTarget(path)
	if !ok {
		return false
	}

	if !parser.IsRecordSource(content) {
		return false
	}

	field := strings.TrimSuffix(f.MethodName, "()")
	accessor := regexp.MustCompile(fmt.Sprintf(
		`public\s+java\.util\.Map<[^>]+>\s+%s\(\)\s*\{[^}]*return\s+%s;[^}]*\}`,
		regexp.QuoteMeta(field), regexp.QuoteMeta(field),
	))
	if !accessor.MatchString(content) {
		return false
	}

	oldReturn := fmt.Sprintf("return %s;", field)
	newReturn := fmt.Sprintf("return java.util.Collections.unmodifiableMap(%s);", field)
	content = strings.ReplaceAll(content, oldReturn, newReturn)
	content = ensureCollectionsImport(content)

	if !writeTarget(path, content) {
		return false
	}

	fx.FixesApplied = append(fx.FixesApplied,
		fmt.Sprintf("%s corrigido para %s - Map embrulhado em Collections.unmodifiableMap()", model.BugEIExposeRep, f.Description))
	return true
}

// ensureCollectionsImport acrescenta o import de Collections uma única vez,
// logo após a última linha de import existente. Fonte sem nenhuma linha de
// import fica inalterado.
func ensureCollectionsImport(content string) string {
	if strings.Contains(content, collectionsImport) {
		return content
	}
	locs := importLine.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return content
	}
	at := locs[len(locs)-1][1]
	return content[:at] + collectionsImport + "\n" + content[at:]
}
