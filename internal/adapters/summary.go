package adapters

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Metric é uma linha rótulo/valor do cabeçalho do relatório.
type Metric struct {
	Label string
	Value string
}

// ReportSummary é a visão geral que o próprio relatório carrega antes da
// lista de bugs: título, heading principal e a primeira tabela de resumo.
type ReportSummary struct {
	Title   string
	Heading string
	Metrics []Metric
}

// Summarize extrai best-effort o cabeçalho do relatório HTML. A marcação
// exata varia com o stylesheet do SpotBugs, então só recolhemos o que
// estiver lá.
func Summarize(b []byte) (*ReportSummary, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("erro ao interpretar o HTML do relatório: %w", err)
	}

	s := &ReportSummary{
		Title:   strings.TrimSpace(doc.Find("title").First().Text()),
		Heading: strings.TrimSpace(doc.Find("h1").First().Text()),
	}

	doc.Find("table").First().Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 2 {
			return
		}
		label := strings.TrimSpace(cells.Eq(0).Text())
		value := strings.TrimSpace(cells.Eq(1).Text())
		if label == "" && value == "" {
			return
		}
		s.Metrics = append(s.Metrics, Metric{Label: label, Value: value})
	})

	return s, nil
}

// SummarizeFile lê e resume o relatório. Arquivo inexistente devolve nil
// sem erro, como no parser de achados.
func SummarizeFile(path string) (*ReportSummary, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler relatório: %w", err)
	}
	return Summarize(b)
}
