package v1

import (
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	emptyPhotosMessage      = "Nenhuma foto disponível no momento. Em breve novos trabalhos serão adicionados."
	emptyAutomationsMessage = "Nenhuma automação disponível no momento. Em breve novos projetos serão adicionados."
)

type GalleryHandler struct {
	galleryUC usecase.GalleryUsecase
}

// NewGalleryHandler registers the public gallery routes
func NewGalleryHandler(public *gin.RouterGroup, galleryUC usecase.GalleryUsecase) {
	handler := &GalleryHandler{
		galleryUC: galleryUC,
	}

	public.GET("/photos", handler.ListPhotos)
	public.GET("/automations", handler.ListAutomations)
}

// ListPhotos godoc
// @Summary      List portfolio photos
// @Description  Whole photos collection, most recent first. A store failure yields the same empty list as an empty collection.
// @Tags         gallery
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Photo}
// @Router       /photos [get]
func (h *GalleryHandler) ListPhotos(c *gin.Context) {
	photos := h.galleryUC.ListPhotos(c.Request.Context())

	message := "Fotos carregadas"
	if len(photos) == 0 {
		message = emptyPhotosMessage
	}
	response.List(c, http.StatusOK, message, photos)
}

// ListAutomations godoc
// @Summary      List n8n automation showcases
// @Description  Whole automations collection, most recent first. A store failure yields the same empty list as an empty collection.
// @Tags         gallery
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Automation}
// @Router       /automations [get]
func (h *GalleryHandler) ListAutomations(c *gin.Context) {
	automations := h.galleryUC.ListAutomations(c.Request.Context())

	message := "Automações carregadas"
	if len(automations) == 0 {
		message = emptyAutomationsMessage
	}
	response.List(c, http.StatusOK, message, automations)
}
