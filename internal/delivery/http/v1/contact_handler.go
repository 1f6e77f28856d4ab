package v1

import (
	"errors"
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth). Extra
// handlers, such as a rate limiter, run before the form is processed.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, guards ...gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", append(guards, handler.SubmitContact)...)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the five form fields and stores them in contact_messages. Never retried server side.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      201      {object}  response.Response{data=domain.ContactAck}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response{error=map[string]string}
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Formulário inválido"))
		return
	}

	ack, err := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	if err != nil {
		var fieldErrs validation.FieldErrors
		var subErr *usecase.SubmissionError
		switch {
		case errors.As(err, &fieldErrs):
			c.Error(apperror.Unprocessable("Verifique os campos do formulário", fieldErrs))
		case errors.As(err, &subErr):
			c.Error(apperror.New(http.StatusInternalServerError, usecase.SubmissionFailedMessage, subErr.Err))
		case errors.Is(err, usecase.ErrSubmissionInFlight):
			c.Error(apperror.Conflict("Envio em andamento"))
		default:
			c.Error(apperror.Internal(err))
		}
		return
	}

	response.Success(c, http.StatusCreated, ack.Title, ack)
}
