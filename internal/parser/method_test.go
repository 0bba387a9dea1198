package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMethodStart(t *testing.T) {
	simple := []string{
		"package com.vajra;\n",
		"\n",
		"public class Worker {\n",
		"\n",
		"    private void enqueue(Runnable task) {\n",
		"        executor.submit(task);\n",
		"    }\n",
		"}\n",
	}
	nested := []string{
		"public class Worker {\n",
		"    public void run() {\n",
		"        if (ready) {\n",
		"            pool.submit(job);\n",
		"        }\n",
		"    }\n",
		"}\n",
	}
	oneLiner := []string{
		"public void submitAll() { tasks.forEach(t -> pool.submit(t)); }\n",
	}
	noDecl := []string{
		"// utilitário\n",
		"static int x = 0;\n",
		"int y = compute();\n",
	}

	tests := []struct {
		name     string
		lines    []string
		idx      int
		expected int
	}{
		{"metodo_simples", simple, 5, 4},
		{"bloco_aninhado", nested, 3, 1},
		{"declaracao_na_propria_linha", oneLiner, 0, 0},
		{"sem_declaracao", noDecl, 2, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FindMethodStart(tt.lines, tt.idx))
			// reexecução não pode mudar o resultado
			assert.Equal(t, tt.expected, FindMethodStart(tt.lines, tt.idx))
		})
	}
}

func TestFindMethodStartIgnoraMetodoIrmaoFechado(t *testing.T) {
	lines := []string{
		"public class C {\n",
		"    public void a() {\n",
		"    }\n",
		"\n",
		"    public void b() {\n",
		"        q.submit(r);\n",
		"    }\n",
		"}\n",
	}
	// a declaração de a() fica acima, mas o saldo de chaves aponta b()
	assert.Equal(t, 4, FindMethodStart(lines, 5))
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{"com_quebra_final", "a\nb\n", []string{"a\n", "b\n"}},
		{"sem_quebra_final", "a\nb", []string{"a\n", "b"}},
		{"vazio", "", nil},
		{"so_quebra", "\n", []string{"\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := SplitLines(tt.content)
			if tt.expected == nil {
				require.Empty(t, lines)
			} else {
				require.Equal(t, tt.expected, lines)
			}
			// juntar de volta devolve o conteúdo byte a byte
			assert.Equal(t, tt.content, strings.Join(lines, ""))
		})
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"quatro_espacos", "    foo();", "    "},
		{"tab", "\tbar();", "\t"},
		{"sem_indentacao", "baz();", ""},
		{"linha_em_branco", "   ", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Indent(tt.line))
		})
	}
}
