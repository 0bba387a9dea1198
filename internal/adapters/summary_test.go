package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSummaryReport = `<html>
<head><title>SpotBugs Report</title></head>
<body>
<h1>Project Information</h1>
<table>
<tr><th>Metric</th><th>Value</th></tr>
<tr><td>Code analyzed</td><td>2026-08-20</td></tr>
<tr><td>Packages</td><td>4</td></tr>
<tr><td>Total bugs</td><td>3</td></tr>
</table>
<table>
<tr><td>outra tabela</td><td>ignorada</td></tr>
</table>
</body>
</html>`

func TestSummarize(t *testing.T) {
	s, err := Summarize([]byte(sampleSummaryReport))
	require.NoError(t, err)

	assert.Equal(t, "SpotBugs Report", s.Title)
	assert.Equal(t, "Project Information", s.Heading)
	// só a primeira tabela conta e a linha de cabeçalho (th) fica de fora
	require.Len(t, s.Metrics, 3)
	assert.Equal(t, Metric{Label: "Code analyzed", Value: "2026-08-20"}, s.Metrics[0])
	assert.Equal(t, Metric{Label: "Total bugs", Value: "3"}, s.Metrics[2])
}

func TestSummarizeSemCabecalho(t *testing.T) {
	s, err := Summarize([]byte("<html><body><p>relatório sem título nem tabela</p></body></html>"))
	require.NoError(t, err)

	assert.Empty(t, s.Title)
	assert.Empty(t, s.Heading)
	assert.Empty(t, s.Metrics)
}

func TestSummarizeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.html")
	require.NoError(t, os.WriteFile(path, []byte(sampleSummaryReport), 0o644))

	s, err := SummarizeFile(path)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "SpotBugs Report", s.Title)
}

func TestSummarizeFileInexistente(t *testing.T) {
	s, err := SummarizeFile(filepath.Join(t.TempDir(), "nao-existe.html"))
	require.NoError(t, err)
	assert.Nil(t, s)
}
