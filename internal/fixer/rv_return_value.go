package fixer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Sena-ops/spotfix/internal/model"
	"github.com/Sena-ops/spotfix/internal/parser"
)

const suppressAnnotation = "@SuppressWarnings"

// fixRVReturnValueIgnored trata retorno ignorado em chamadas submit() de
// executor. Em uso fire-and-forget a supressão é adequada: insere a
// anotação imediatamente antes da declaração do método que contém a linha
// apontada, com a mesma indentação da declaração. Não faz nada se a linha
// não tem a chamada, se a declaração não foi localizada ou se já existe
// anotação entre a declaração e a linha apontada.
func (fx *Fixer) fixRVReturnValueIgnored(f model.Finding) bool {
	path := fx.targetPath(f)
	content, ok := readTarget(path)
	if !ok {
		return false
	}

	lines := parser.SplitLines(content)
	idx := f.Line - 1
	if idx < 0 || idx >= len(lines) {
		return false
	}

	if !strings.Contains(lines[idx], ".submit(") {
		return false
	}

	start := parser.FindMethodStart(lines, idx)
	if start < 0 {
		return false
	}
	if parser.HasAnnotation(lines, start, idx, suppressAnnotation) {
		return false
	}

	suppress := fmt.Sprintf("%s@SuppressWarnings(%q)\n", parser.Indent(lines[start]), model.BugRVReturnValueIgnored)
	lines = slices.Insert(lines, start, suppress)

	if !writeTarget(path, strings.Join(lines, "")) {
		return false
	}

	fx.FixesApplied = append(fx.FixesApplied,
		fmt.Sprintf("Anotação @SuppressWarnings adicionada para %s", f.Description))
	return true
}
