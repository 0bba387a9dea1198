package parser

import "strings"

// FindMethodStart procura, de trás para frente a partir de idx (inclusive),
// a linha que mais provavelmente declara o método que contém idx. Mantém um
// saldo de chaves andando para trás (+1 por '}', -1 por '{') e aceita a
// primeira linha que tenha um modificador de visibilidade, um par de
// parênteses (heurística de lista de parâmetros) e saldo <= 0.
// Retorna -1 se chegar ao início do arquivo sem encontrar.
//
// É uma heurística sobre texto, não um parser de Java: chaves dentro de
// strings ou comentários podem confundir o saldo.
func FindMethodStart(lines []string, idx int) int {
	braces := 0
	for i := idx; i >= 0; i-- {
		line := lines[i]
		braces += strings.Count(line, "}")
		braces -= strings.Count(line, "{")

		if strings.Contains(line, "public") || strings.Contains(line, "private") || strings.Contains(line, "protected") {
			if strings.Contains(line, "(") && strings.Contains(line, ")") && braces <= 0 {
				return i
			}
		}
	}
	return -1
}

// SplitLines divide o conteúdo preservando os terminadores de linha, de modo
// que strings.Join(lines, "") devolve o conteúdo original byte a byte.
func SplitLines(content string) []string {
	lines := strings.SplitAfter(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// Indent devolve o prefixo de espaços/tabs de uma linha.
func Indent(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
