package model

import "strings"

type Severity string

const (
	SevCritical Severity = "CRITICAL"
	SevHigh     Severity = "HIGH"
	SevMedium   Severity = "MEDIUM"
	SevLow      Severity = "LOW"
	SevInfo     Severity = "INFO"
)

// Tipos de bug do SpotBugs com tratamento conhecido. O conjunto é aberto:
// o relatório pode trazer tipos novos a qualquer momento.
const (
	BugRVReturnValueIgnored = "RV_RETURN_VALUE_IGNORED_BAD_PRACTICE"
	BugEIExposeRep          = "EI_EXPOSE_REP"
	BugEIExposeRep2         = "EI_EXPOSE_REP2"
)

type Finding struct {
	BugType     string   // ex: "EI_EXPOSE_REP"
	ClassName   string   // classe totalmente qualificada
	MethodName  string   // método ou acessor apontado pelo relatório
	FilePath    string   // caminho relativo ao project root, normalizado com "/"
	Line        int      // 1-based
	Severity    Severity // severidade normalizada
	Description string   // resumo curto "TIPO in Classe.metodo"
}

// SeverityOf normaliza a severidade a partir da família do tipo de bug.
// O trecho extraído do HTML não traz prioridade, então a família do
// detector serve de aproximação.
func SeverityOf(bugType string) Severity {
	switch {
	case strings.HasPrefix(bugType, "NP_"), strings.HasPrefix(bugType, "EC_"):
		return SevHigh
	case strings.HasPrefix(bugType, "EI_"), strings.HasPrefix(bugType, "RV_"), strings.HasPrefix(bugType, "MS_"):
		return SevMedium
	case strings.HasPrefix(bugType, "SE_"), strings.HasPrefix(bugType, "DM_"):
		return SevLow
	default:
		return SevInfo
	}
}
