package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	actorDomain "realname-backend/internal/domain/actor"
	appDomain "realname-backend/internal/domain/application"
	appUsecase "realname-backend/internal/usecase/application"
	"realname-backend/pkg/identity"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct{ uc *appUsecase.Usecase }

func NewApplicationHandler(uc *appUsecase.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type submitReq struct {
	Name           string `json:"name"             validate:"required,max=64"`
	Gender         string `json:"gender"           validate:"required"`
	DocumentType   string `json:"document_type"    validate:"required"`
	DocumentNumber string `json:"document_number"  validate:"required,docnumber"`
	Phone          string `json:"phone"            validate:"required,cnmobile"`
	Address        string `json:"address"          validate:"required"`
	PhotoFrontURL  string `json:"photo_front_url"  validate:"required,url"`
	PhotoBackURL   string `json:"photo_back_url"   validate:"required,url"`
}

type resubmitReq struct {
	Name           *string `json:"name"             validate:"omitempty,max=64"`
	Gender         *string `json:"gender"`
	DocumentType   *string `json:"document_type"`
	DocumentNumber *string `json:"document_number"  validate:"omitempty,docnumber"`
	Phone          *string `json:"phone"            validate:"omitempty,cnmobile"`
	Address        *string `json:"address"`
	PhotoFrontURL  *string `json:"photo_front_url"  validate:"omitempty,url"`
	PhotoBackURL   *string `json:"photo_back_url"   validate:"omitempty,url"`
}

type decisionReq struct {
	Verdict string `json:"verdict" validate:"required,oneof=approve reject"`
	Remarks string `json:"remarks"`
}

// actorFrom builds the acting principal from the Ax-Actor-* headers set by
// the authentication collaborator. No headers means anonymous.
func actorFrom(c echo.Context) (actorDomain.Actor, bool) {
	roleStr := strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Role"))
	if roleStr == "" {
		return actorDomain.Actor{Role: actorDomain.RoleAnonymous}, true
	}
	role, ok := actorDomain.ParseRole(roleStr)
	if !ok {
		return actorDomain.Actor{}, false
	}
	actorID := strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Id"))
	if role != actorDomain.RoleAnonymous && actorID == "" {
		return actorDomain.Actor{}, false
	}
	return actorDomain.Actor{ID: actorID, Role: role}, true
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	act, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid actor headers"})
	}
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Submit(c.Request().Context(), act, appUsecase.SubmitInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) GetDetail(c echo.Context) error {
	appID := c.Param("app_id")
	if appID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing app_id path param"})
	}
	dto, err := h.uc.GetDetail(c.Request().Context(), appID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Resubmit(c echo.Context) error {
	act, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid actor headers"})
	}
	appID := c.Param("app_id")
	if appID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing app_id path param"})
	}
	var req resubmitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	if err := h.uc.Resubmit(c.Request().Context(), act, appID, appUsecase.ResubmitInput(req)); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "resubmitted"})
}

func (h *ApplicationHandler) Cancel(c echo.Context) error {
	act, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid actor headers"})
	}
	appID := c.Param("app_id")
	if appID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing app_id path param"})
	}
	if err := h.uc.Cancel(c.Request().Context(), act, appID); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "cancelled"})
}

func (h *ApplicationHandler) Decide(c echo.Context) error {
	act, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid actor headers"})
	}
	appID := c.Param("app_id")
	if appID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing app_id path param"})
	}
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	err := h.uc.Decide(c.Request().Context(), act, appID, appUsecase.Verdict(req.Verdict), req.Remarks)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "decided"})
}

// writeDomainError maps the store's error taxonomy onto HTTP statuses.
// Anything unrecognized is a storage failure: logged, rolled back upstream,
// surfaced as 500.
func writeDomainError(c echo.Context, err error) error {
	var (
		ve  *appDomain.ValidationError
		fe  *identity.InvalidFormatError
		ite *appDomain.IllegalTransitionError
	)
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: ve.Error()})
	case errors.As(err, &fe):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: fe.Error()})
	case errors.Is(err, appDomain.ErrNoEffectiveChange):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appDomain.ErrDuplicateIdentity):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.As(err, &ite):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: ite.Error()})
	case errors.Is(err, appDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appDomain.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("storage failure: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
