package fixer

import (
	"github.com/Sena-ops/spotfix/internal/model"
)

// FixFunc é a transformação conhecida para um tipo de bug. Devolve true
// somente quando o fonte foi de fato reescrito.
type FixFunc func(fx *Fixer, f model.Finding) bool

// fixes mapeia tipo de bug -> transformação. O conjunto é aberto: tipo sem
// entrada aqui é contado como ignorado, nunca é erro.
var fixes = map[string]FixFunc{
	model.BugRVReturnValueIgnored: (*Fixer).fixRVReturnValueIgnored,
	model.BugEIExposeRep:          (*Fixer).fixEIExposeRep,
	model.BugEIExposeRep2:         (*Fixer).fixEIExposeRep2,
}

// manualReviewKinds marca os tipos que nunca recebem correção automática e
// entram na contagem de revisão manual. Hoje só o de exposição via
// construtor; um tipo novo sem correção possível entra aqui.
var manualReviewKinds = map[string]bool{
	model.BugEIExposeRep2: true,
}

// apply despacha o achado para a transformação registrada do seu tipo.
func (fx *Fixer) apply(f model.Finding) bool {
	fn, ok := fixes[f.BugType]
	if !ok {
		return false
	}
	return fn(fx, f)
}
