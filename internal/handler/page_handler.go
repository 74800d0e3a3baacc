package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"openeye/internal/errors"
	"openeye/internal/service"
)

// PageHandler renders the server-side HTML pages. Each page is a read-only
// view over at most one filtered query.
type PageHandler struct {
	complaintService service.ComplaintService
	directoryService service.DirectoryService
}

// NewPageHandler creates a new page handler.
func NewPageHandler(complaintService service.ComplaintService, directoryService service.DirectoryService) *PageHandler {
	return &PageHandler{
		complaintService: complaintService,
		directoryService: directoryService,
	}
}

// Index renders the home page.
func (h *PageHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

// LoginRegister renders the combined login/registration page.
func (h *PageHandler) LoginRegister(c echo.Context) error {
	return c.Render(http.StatusOK, "login_register.html", nil)
}

// FileComplaint renders the complaint submission form.
func (h *PageHandler) FileComplaint(c echo.Context) error {
	return c.Render(http.StatusOK, "file_complaint.html", nil)
}

// Areas renders the active areas listing.
func (h *PageHandler) Areas(c echo.Context) error {
	areas, err := h.directoryService.ListAreas(c.Request().Context())
	if err != nil {
		he := errors.MapError(err)
		return c.JSON(he.StatusCode, he.ToResponse())
	}
	return c.Render(http.StatusOK, "areas.html", echo.Map{"Areas": areas})
}

// PendingProblems renders complaints still awaiting review.
func (h *PageHandler) PendingProblems(c echo.Context) error {
	complaints, err := h.complaintService.ListPending(c.Request().Context())
	if err != nil {
		he := errors.MapError(err)
		return c.JSON(he.StatusCode, he.ToResponse())
	}

	views := make([]ComplaintView, 0, len(complaints))
	for _, complaint := range complaints {
		views = append(views, toComplaintView(complaint))
	}

	return c.Render(http.StatusOK, "pending_problems.html", echo.Map{"Complaints": views})
}

// ActiveAuthorities renders the active authority directory.
func (h *PageHandler) ActiveAuthorities(c echo.Context) error {
	authorities, err := h.directoryService.ListAuthorities(c.Request().Context())
	if err != nil {
		he := errors.MapError(err)
		return c.JSON(he.StatusCode, he.ToResponse())
	}
	return c.Render(http.StatusOK, "active_authorities.html", echo.Map{"Authorities": authorities})
}
