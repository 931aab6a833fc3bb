package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/procobro/usuarios-api/internal/application"
	"github.com/procobro/usuarios-api/internal/domain/entity"
	"github.com/procobro/usuarios-api/pkg/response"
	"github.com/procobro/usuarios-api/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// userResponse is the full representation returned by get/create/update.
type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Age       *int      `json:"edad"`
	Active    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// userSummaryResponse is the projection used by the list endpoint.
type userSummaryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Active    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// List handles GET /usuarios?skip=&limit=&activo=
func (h *UserHandler) List(c *gin.Context) {
	var in userapp.ListInput

	var details map[string]string
	queryInt := func(name string, def int) int {
		v := c.Query(name)
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			if details == nil {
				details = map[string]string{}
			}
			details[name] = "must be a valid integer"
			return def
		}
		return n
	}

	in.Skip = queryInt("skip", 0)
	in.Limit = queryInt("limit", 100)
	if v := c.Query("activo"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			if details == nil {
				details = map[string]string{}
			}
			details["activo"] = "must be a boolean"
		} else {
			in.Active = &b
		}
	}
	if details != nil {
		response.Detail(c, http.StatusUnprocessableEntity, details)
		return
	}

	users, err := h.Svc.List(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}

	out := make([]userSummaryResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userSummaryResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Active:    u.Active,
			CreatedAt: u.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /usuarios/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	u, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(u))
}

// Create handles POST /usuarios
func (h *UserHandler) Create(c *gin.Context) {
	var in userapp.CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(u))
}

// Update handles PUT /usuarios/:id with a partial payload
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	var in userapp.UpdateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Update(c.Request.Context(), id, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(u))
}

// Delete handles DELETE /usuarios/:id (soft delete)
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Mensaje(c, http.StatusOK, "Usuario eliminado correctamente", gin.H{"id": id})
}

func (h *UserHandler) userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, map[string]string{"usuario_id": "must be a valid integer"})
		return 0, false
	}
	return id, true
}

// fail translates domain failures to status codes; anything unexpected is
// logged and answered with a generic 500.
func (h *UserHandler) fail(c *gin.Context, err error) {
	var verr *userapp.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Detail(c, http.StatusUnprocessableEntity, verr.Details)
	case errors.Is(err, userapp.ErrEmailTaken):
		response.Detail(c, http.StatusBadRequest, "El email ya está registrado")
	case errors.Is(err, userapp.ErrUserNotFound):
		response.NotFound(c, "Usuario no encontrado")
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("path", c.FullPath()).Error("unexpected failure")
		}
		response.Internal(c)
	}
}
