package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRecordSource(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{"record_valido", "package a;\n\npublic record Snapshot(int total) {}\n", true},
		{"classe_comum", "package a;\n\npublic class Snapshot {}\n", false},
		{"vazio", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRecordSource(tt.content))
		})
	}
}

func TestHasAnnotation(t *testing.T) {
	lines := []string{
		"    @SuppressWarnings(\"RV_RETURN_VALUE_IGNORED_BAD_PRACTICE\")\n",
		"    private void enqueue(Runnable task) {\n",
		"        executor.submit(task);\n",
		"    }\n",
	}

	tests := []struct {
		name     string
		from, to int
		expected bool
	}{
		{"anotacao_no_intervalo", 0, 2, true},
		{"fora_do_intervalo", 1, 3, false},
		{"limites_recortados", -10, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasAnnotation(lines, tt.from, tt.to, "@SuppressWarnings"))
		})
	}
}
