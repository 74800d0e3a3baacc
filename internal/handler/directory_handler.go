package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"openeye/internal/errors"
	"openeye/internal/model"
	"openeye/internal/service"
)

// DirectoryHandler serves the public authority directory.
type DirectoryHandler struct {
	directoryService service.DirectoryService
}

// NewDirectoryHandler creates a new directory handler.
func NewDirectoryHandler(directoryService service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// AuthorityView is a flattened authority record without internal flags.
type AuthorityView struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Jurisdiction string `json:"jurisdiction"`
}

// ListAuthoritiesResponse wraps the authority listing.
type ListAuthoritiesResponse struct {
	Success     bool            `json:"success"`
	Authorities []AuthorityView `json:"authorities"`
}

func toAuthorityView(a model.Authority) AuthorityView {
	return AuthorityView{
		ID:           a.ID,
		Name:         a.Name,
		Department:   a.Department,
		ContactEmail: a.ContactEmail,
		ContactPhone: a.ContactPhone,
		Jurisdiction: a.Jurisdiction,
	}
}

// ListAuthorities godoc
// @Summary List active authorities
// @Tags authorities
// @Produce json
// @Success 200 {object} ListAuthoritiesResponse
// @Failure 500 {object} errors.Response
// @Router /authorities [get]
func (h *DirectoryHandler) ListAuthorities(c echo.Context) error {
	authorities, err := h.directoryService.ListAuthorities(c.Request().Context())
	if err != nil {
		he := errors.MapError(err)
		return c.JSON(he.StatusCode, he.ToResponse())
	}

	views := make([]AuthorityView, 0, len(authorities))
	for _, authority := range authorities {
		views = append(views, toAuthorityView(authority))
	}

	return c.JSON(http.StatusOK, ListAuthoritiesResponse{
		Success:     true,
		Authorities: views,
	})
}
