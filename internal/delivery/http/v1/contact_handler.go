package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"freelance-site-backend/internal/delivery/http/response"
	"freelance-site-backend/internal/domain"
	"freelance-site-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limiter, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Relays a contact form submission to the site owner's mailbox.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactDraft  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var draft domain.ContactDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		// Well-formed JSON with the wrong field types is a client mistake.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			c.Error(apperror.BadRequest(domain.MsgFieldsRequired, err))
			return
		}
		c.Error(apperror.Internal(domain.MsgServerError, fmt.Errorf("decode contact body: %w", err)))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &draft); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.Error(apperror.BadRequest(domain.MsgFieldsRequired, err))
		case errors.Is(err, domain.ErrNotConfigured):
			c.Error(apperror.Internal(domain.MsgServerConfig, err))
		case errors.Is(err, domain.ErrDelivery):
			c.Error(apperror.Internal(domain.MsgSendFailed, err))
		default:
			c.Error(apperror.Internal(domain.MsgServerError, err))
		}
		return
	}

	response.Success(c, http.StatusOK)
}
