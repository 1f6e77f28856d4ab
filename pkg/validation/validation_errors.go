package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a field's JSON name to the message of its first failing rule.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FieldMessages holds the user-facing message per field and rule. Fields or
// rules missing here fall back to a generic message built from the tag.
var FieldMessages = map[string]map[string]string{
	"name": {
		"required": "Nome deve ter pelo menos 2 caracteres",
		"min":      "Nome deve ter pelo menos 2 caracteres",
		"max":      "Nome muito longo",
	},
	"email": {
		"required": "Email inválido",
		"email":    "Email inválido",
		"max":      "Email muito longo",
	},
	"phone": {
		"required": "Telefone inválido",
		"min":      "Telefone inválido",
		"max":      "Telefone muito longo",
	},
	"service_type": {
		"required": "Selecione um serviço",
		"oneof":    "Selecione um serviço",
	},
	"message": {
		"required": "Mensagem deve ter pelo menos 10 caracteres",
		"min":      "Mensagem deve ter pelo menos 10 caracteres",
		"max":      "Mensagem muito longa",
	},
}

// FormatFieldErrors converts validator.ValidationErrors into FieldErrors.
// Any other error yields (nil, false).
func FormatFieldErrors(err error) (FieldErrors, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	out := make(FieldErrors, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = formatSingleError(e)
	}
	return out, true
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	if rules, ok := FieldMessages[e.Field()]; ok {
		if msg, ok := rules[e.Tag()]; ok {
			return msg
		}
	}

	param := e.Param()
	switch e.Tag() {
	case "required":
		return "Campo obrigatório"
	case "min":
		return fmt.Sprintf("Mínimo de %s caracteres", param)
	case "max":
		return fmt.Sprintf("Máximo de %s caracteres", param)
	case "email":
		return "Email inválido"
	case "url":
		return "URL inválida"
	case "oneof":
		return fmt.Sprintf("Deve ser um de: %s", strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("Valor inválido (%s)", e.Tag())
	}
}
