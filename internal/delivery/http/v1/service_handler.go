package v1

import (
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// ListServices godoc
// @Summary      List offered services
// @Tags         services
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Service}
// @Router       /services [get]
func ListServices(c *gin.Context) {
	response.List(c, http.StatusOK, "Serviços", domain.ServiceCatalog)
}
