// Package i18n renders domain error messages in the caller's language.
// English is the source language; Brazilian Portuguese translations are
// registered in the x/text message catalog keyed by the domain templates.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Pesokrava/tournament_registry/internal/domain"
)

var supported = []language.Tag{
	language.English, // first tag is the matcher fallback
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

func init() {
	pt := language.BrazilianPortuguese

	for key, text := range map[string]string{
		domain.TemplateBase:            "erro de domínio",
		domain.TemplateConcept:         "erro de %s",
		domain.TemplateOperationFailed: "erro durante a operação de %s do %s",
		domain.TemplateNotFound:        "%s com id %s não encontrado",
		domain.TemplateInvalidInput:    "dados de %s inválidos",
		domain.TemplateConflict:        "%s em conflito com dados existentes",

		string(domain.ConceptMunicipality): "município",
		string(domain.ConceptProfile):      "perfil",
		string(domain.ConceptPhoneType):    "tipo de telefone",

		domain.OpInsert: "inclusão",
		domain.OpFind:   "consulta",
		domain.OpList:   "listagem",
		domain.OpCount:  "contagem",
		domain.OpUpdate: "alteração",
		domain.OpDelete: "exclusão",
	} {
		if err := message.SetString(pt, key, text); err != nil {
			panic(err)
		}
	}
}

// Match picks the best supported language for an Accept-Language header
// value, falling back to fallback when nothing matches
func Match(acceptLanguage string, fallback language.Tag) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return supported[index]
}

// Parse resolves a configured language name to a supported tag
func Parse(name string) language.Tag {
	tag, err := language.Parse(name)
	if err != nil {
		return language.English
	}
	_, index, _ := matcher.Match(tag)
	return supported[index]
}

// Message renders err in lang. Template arguments that are concept or
// operation names are translated too; identifiers are kept verbatim.
func Message(err *domain.Error, lang language.Tag) string {
	p := message.NewPrinter(lang)
	format, args := err.Template()

	switch err.Scenario() {
	case domain.ScenarioOperationFailed:
		args = []any{p.Sprintf(err.Operation()), p.Sprintf(string(err.Concept()))}
	case domain.ScenarioNotFound:
		args = []any{p.Sprintf(string(err.Concept())), err.Identifier()}
	default:
		for i, a := range args {
			if s, ok := a.(string); ok && s == string(err.Concept()) {
				args[i] = p.Sprintf(s)
			}
		}
	}

	if len(args) == 0 {
		if format == domain.TemplateBase {
			return p.Sprintf(format)
		}
		// explicit messages are shown as written
		return format
	}
	return p.Sprintf(format, args...)
}
