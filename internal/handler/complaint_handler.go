package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"openeye/internal/errors"
	"openeye/internal/model"
	"openeye/internal/service"
)

const createdAtLayout = "2006-01-02 15:04:05"

// ComplaintHandler handles complaint submission and listing endpoints.
type ComplaintHandler struct {
	complaintService service.ComplaintService
}

// NewComplaintHandler creates a new complaint handler.
func NewComplaintHandler(complaintService service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// SubmitComplaintRequest represents a complaint submission.
type SubmitComplaintRequest struct {
	Domain      string `json:"domain" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// SubmitComplaintResponse returns the generated public id.
type SubmitComplaintResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ComplaintID string `json:"complaint_id"`
}

// ComplaintView is a flattened complaint record with a formatted timestamp.
type ComplaintView struct {
	ID          uint   `json:"id"`
	ComplaintID string `json:"complaint_id"`
	Domain      string `json:"domain"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// ListComplaintsResponse wraps the complaint listing.
type ListComplaintsResponse struct {
	Success    bool            `json:"success"`
	Complaints []ComplaintView `json:"complaints"`
}

func toComplaintView(c model.Complaint) ComplaintView {
	return ComplaintView{
		ID:          c.ID,
		ComplaintID: c.ComplaintID,
		Domain:      c.Domain,
		Description: c.Description,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt.Format(createdAtLayout),
	}
}

// Submit godoc
// @Summary Submit a complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Param request body SubmitComplaintRequest true "Complaint data"
// @Success 200 {object} SubmitComplaintResponse
// @Failure 400 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /complaints [post]
func (h *ComplaintHandler) Submit(c echo.Context) error {
	var req SubmitComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	complaint, err := h.complaintService.Submit(c.Request().Context(), req.Domain, req.Description)
	if err != nil {
		he := errors.MapError(err)
		return c.JSON(he.StatusCode, he.ToResponse())
	}

	return c.JSON(http.StatusOK, SubmitComplaintResponse{
		Success:     true,
		Message:     "Complaint submitted successfully",
		ComplaintID: complaint.ComplaintID,
	})
}

// List godoc
// @Summary List all complaints
// @Tags complaints
// @Produce json
// @Success 200 {object} ListComplaintsResponse
// @Failure 500 {object} errors.Response
// @Router /complaints [get]
func (h *ComplaintHandler) List(c echo.Context) error {
	complaints, err := h.complaintService.List(c.Request().Context())
	if err != nil {
		he := errors.MapError(err)
		return c.JSON(he.StatusCode, he.ToResponse())
	}

	views := make([]ComplaintView, 0, len(complaints))
	for _, complaint := range complaints {
		views = append(views, toComplaintView(complaint))
	}

	return c.JSON(http.StatusOK, ListComplaintsResponse{
		Success:    true,
		Complaints: views,
	})
}
