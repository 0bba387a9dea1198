package parser

import "strings"

// IsRecordSource verifica se o fonte declara um record Java (portador de
// dados imutável). É o marcador estrutural exigido antes de tentar a
// correção de campo mutável exposto.
func IsRecordSource(content string) bool {
	return strings.Contains(content, "public record")
}

// HasAnnotation verifica se alguma linha no intervalo [from, to] (inclusive)
// contém a anotação dada. Índices fora dos limites de lines são recortados.
func HasAnnotation(lines []string, from, to int, annotation string) bool {
	if from < 0 {
		from = 0
	}
	if to >= len(lines) {
		to = len(lines) - 1
	}
	for i := from; i <= to; i++ {
		if strings.Contains(lines[i], annotation) {
			return true
		}
	}
	return false
}
