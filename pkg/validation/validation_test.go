package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Website string `json:"website" validate:"omitempty,url"`
	Kind    string `json:"kind" validate:"oneof=a b"`
	Ignored string `json:"-"`
}

func TestFormatFieldErrors(t *testing.T) {
	v := New()

	err := v.Struct(sample{Name: "A", Website: "not a url", Kind: "c"})
	require.Error(t, err)

	fe, ok := FormatFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, FieldErrors{
		"name":    "Nome deve ter pelo menos 2 caracteres",
		"website": "URL inválida",
		"kind":    "Deve ser um de: a, b",
	}, fe)
	assert.Contains(t, fe.Error(), "kind: Deve ser um de: a, b; name:")
}

func TestFormatFieldErrorsNonValidation(t *testing.T) {
	fe, ok := FormatFieldErrors(errors.New("boom"))
	assert.False(t, ok)
	assert.Nil(t, fe)
}

func TestMinCountsCharactersNotBytes(t *testing.T) {
	v := New()
	// "çã" is two characters but four bytes
	assert.NoError(t, v.Struct(sample{Name: "çã", Kind: "a"}))
}
