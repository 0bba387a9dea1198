package fixer

import (
	"fmt"

	"github.com/Sena-ops/spotfix/internal/model"
)

// fixEIExposeRep2 trata referência mutável guardada pelo construtor do
// record. Não existe correção textual segura: o record precisa de um
// construtor canônico com cópia defensiva. Toda ocorrência vai para a
// lista de revisão manual e a transformação nunca reporta sucesso.
func (fx *Fixer) fixEIExposeRep2(f model.Finding) bool {
	fx.ManualReview = append(fx.ManualReview, fmt.Sprintf(
		"%s - Construtor do record precisa de cópia defensiva. Considere um construtor canônico com Collections.unmodifiableMap()",
		f.Description,
	))
	return false
}
