package domain

// ServiceType is one of the two offerings a visitor can ask about
type ServiceType string

const (
	ServicePhotography ServiceType = "fotografia"
	ServiceAutomation  ServiceType = "automacao"
)

// Service is an entry of the static services page
type Service struct {
	ID          ServiceType `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Items       []string    `json:"items"`
}

// ServiceCatalog lists the offerings in display order. Its IDs are exactly the
// values accepted by ContactRequest.ServiceType.
var ServiceCatalog = []Service{
	{
		ID:          ServicePhotography,
		Title:       "Fotografia",
		Description: "Capturando momentos com arte e profissionalismo",
		Items: []string{
			"Ensaios profissionais",
			"Cobertura de eventos",
			"Fotografia de produtos",
			"Trabalhos autorais",
			"Edição e pós-produção",
		},
	},
	{
		ID:          ServiceAutomation,
		Title:       "Automações n8n",
		Description: "Inteligência e eficiência para seu negócio",
		Items: []string{
			"Criação de fluxos completos no n8n",
			"Integrações de APIs",
			"Bots automáticos",
			"Automação de vendas",
			"Assistentes digitais",
			"Integração com WhatsApp, Drive, Notion e mais",
		},
	},
}
