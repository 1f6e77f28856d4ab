package domain_test

import (
	"portfolio-backend/internal/domain"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactRequestTrimmed(t *testing.T) {
	req := domain.ContactRequest{
		Name:        "  Ana  ",
		Email:       "\tana@x.com\n",
		Phone:       " 11999998888 ",
		ServiceType: " fotografia",
		Message:     "  Gostaria de um orçamento  ",
	}

	got := req.Trimmed()
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "ana@x.com", got.Email)
	assert.Equal(t, "11999998888", got.Phone)
	assert.Equal(t, "fotografia", got.ServiceType)
	assert.Equal(t, "Gostaria de um orçamento", got.Message)
	assert.Equal(t, got, got.Trimmed())
	assert.Equal(t, "  Ana  ", req.Name, "Trimmed must not modify the receiver")
}

func TestContactRequestIsZero(t *testing.T) {
	assert.True(t, domain.ContactRequest{}.IsZero())
	assert.False(t, domain.ContactRequest{Name: "Ana"}.IsZero())
}

// The oneof rule on service_type must accept exactly the catalog ids.
func TestServiceTypeTagMatchesCatalog(t *testing.T) {
	field, ok := reflect.TypeOf(domain.ContactRequest{}).FieldByName("ServiceType")
	assert.True(t, ok)

	var allowed []string
	for _, rule := range strings.Split(field.Tag.Get("validate"), ",") {
		if strings.HasPrefix(rule, "oneof=") {
			allowed = strings.Fields(strings.TrimPrefix(rule, "oneof="))
		}
	}

	var ids []string
	for _, svc := range domain.ServiceCatalog {
		ids = append(ids, string(svc.ID))
	}
	assert.Equal(t, ids, allowed)
}
