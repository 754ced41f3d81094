package llm

import (
	"fmt"

	"jurisflow/internal/domain"
)

const (
	FIRACSystemPrompt       = "Você é um especialista em análise jurídica brasileira."
	DistinguishSystemPrompt = "Você é um magistrado especialista em análise de precedentes e distinguish."
	DraftSystemPrompt       = "Você é um magistrado especialista em redação de peças judiciais."
)

// BuildFIRACPrompt returns the FIRAC analysis prompt for text. When truncated
// is set the excerpt is marked as partial.
func BuildFIRACPrompt(text string, truncated bool) string {
	if truncated {
		text += "..."
	}
	return `Analise o seguinte texto jurídico usando a metodologia FIRAC:

Texto: ` + text + `

Forneça uma análise estruturada em:
1. FATOS: Quais são os fatos principais do caso?
2. QUESTÕES (Issues): Quais são as questões jurídicas envolvidas?
3. REGRAS: Quais normas jurídicas se aplicam?
4. ANÁLISE: Como as regras se aplicam aos fatos?
5. CONCLUSÃO: Qual a conclusão jurídica?

Responda somente com um objeto JSON com as chaves "fatos", "questoes", "regras", "analise" e "conclusao".`
}

// BuildDistinguishPrompt returns the five-part distinguish prompt. precedent
// must already be serialized JSON and is embedded verbatim.
func BuildDistinguishPrompt(currentFacts, precedent string) string {
	return `Analise se o precedente judicial se aplica ao caso atual (distinguish):

FATOS DO CASO ATUAL:
` + currentFacts + `

DADOS DO PRECEDENTE:
` + precedent + `

Faça a análise de distinguish respondendo:
1. O precedente se aplica ao caso atual? (SIM/NÃO)
2. Quais são as semelhanças entre os casos?
3. Quais são as diferenças relevantes?
4. Por que o precedente deve ou não ser aplicado?
5. Sugestão de argumentação para distinguish (se aplicável)

Responda somente com um objeto JSON com as chaves:
"aplicavel" ("SIM" ou "NÃO"), "semelhancas", "diferencas", "fundamentacao",
"argumentacao_distinguish" e "confianca" (número entre 0 e 1 indicando a
segurança da conclusão).`
}

var draftTemplates = map[domain.DocumentKind]string{
	domain.DocumentKindRuling: `Gere uma minuta de sentença judicial com base nos seguintes dados:

%s

A sentença deve conter:
1. Relatório dos fatos
2. Fundamentação jurídica
3. Dispositivo
4. Formatação adequada

Gere um texto profissional e tecnicamente correto.`,
	domain.DocumentKindOrder: `Gere um despacho judicial com base nos seguintes dados:

%s

O despacho deve ser claro, objetivo e tecnicamente correto.`,
}

// BuildDraftPrompt returns the drafting prompt for kind with caseData embedded.
func BuildDraftPrompt(kind domain.DocumentKind, caseData string) (string, error) {
	tmpl, ok := draftTemplates[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedDocumentKind, kind)
	}
	return fmt.Sprintf(tmpl, caseData), nil
}
