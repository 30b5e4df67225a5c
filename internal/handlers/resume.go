package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sreeharir/resume-crm/internal/dto"
	apierrors "github.com/sreeharir/resume-crm/internal/errors"
	"github.com/sreeharir/resume-crm/internal/middleware"
	"github.com/sreeharir/resume-crm/internal/models"
	"github.com/sreeharir/resume-crm/internal/services"
)

// ResumeHandler exposes the record CRUD, filter and export surface.
type ResumeHandler struct {
	resumeService *services.ResumeService
	exportService *services.ExportService
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(resumeService *services.ResumeService, exportService *services.ExportService) *ResumeHandler {
	return &ResumeHandler{
		resumeService: resumeService,
		exportService: exportService,
	}
}

// parseYearQuery reads the optional ?year= parameter. Empty and "All"
// mean no year filter.
func parseYearQuery(c *gin.Context) (*int, bool) {
	raw := c.Query("year")
	if raw == "" || raw == "All" {
		return nil, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &year, true
}

// filteredList loads all records and applies the year filter, then the
// search filter, in that order.
func (h *ResumeHandler) filteredList(c *gin.Context) ([]models.Resume, bool) {
	year, ok := parseYearQuery(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid year")
		return nil, false
	}

	resumes, err := h.resumeService.List()
	if err != nil {
		logrus.WithError(err).Error("failed to list resume records")
		apierrors.InternalError(c, "")
		return nil, false
	}

	resumes = services.FilterByYear(resumes, year)
	resumes = services.Search(resumes, c.Query("q"))
	return resumes, true
}

// ListResumes returns the records matching the optional year and
// search filters, most recently created first.
func (h *ResumeHandler) ListResumes(c *gin.Context) {
	resumes, ok := h.filteredList(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ResumeListResponse{
		Resumes: resumes,
		Total:   len(resumes),
	})
}

// GetResume returns a single record by id.
func (h *ResumeHandler) GetResume(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid resume ID")
		return
	}

	resume, err := h.resumeService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrResumeNotFound) {
			apierrors.NotFound(c, "Resume record not found")
			return
		}
		logrus.WithError(err).Error("failed to load resume record")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, resume)
}

// CreateResume stores a new record.
func (h *ResumeHandler) CreateResume(c *gin.Context) {
	var req dto.ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	resume, err := h.resumeService.Create(req.Fields())
	if err != nil {
		respondResumeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resume)
}

// UpdateResume overwrites every mutable field of an existing record.
func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid resume ID")
		return
	}

	var req dto.ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	resume, err := h.resumeService.Update(id, req.Fields())
	if err != nil {
		respondResumeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

// DeleteResume removes a record. Admin only.
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid resume ID")
		return
	}

	actorRole, exists := middleware.GetUserRole(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.resumeService.Delete(id, actorRole); err != nil {
		respondResumeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Resume record deleted",
	})
}

// ListYears returns the distinct creation years for the filter control.
func (h *ResumeHandler) ListYears(c *gin.Context) {
	years, err := h.resumeService.Years()
	if err != nil {
		logrus.WithError(err).Error("failed to list years")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"years": years})
}

// GetStats returns the dashboard counters.
func (h *ResumeHandler) GetStats(c *gin.Context) {
	stats, err := h.resumeService.GetStats()
	if err != nil {
		logrus.WithError(err).Error("failed to compute stats")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ExportResumes streams the currently filtered view as an xlsx
// download, same filters as ListResumes.
func (h *ResumeHandler) ExportResumes(c *gin.Context) {
	resumes, ok := h.filteredList(c)
	if !ok {
		return
	}

	blob, err := h.exportService.Workbook(resumes)
	if err != nil {
		logrus.WithError(err).Error("failed to build export workbook")
		apierrors.InternalError(c, "Failed to build export")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="resumes.xlsx"`)
	c.Data(http.StatusOK, services.XLSXContentType, blob)
}

func respondResumeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrResumeNotFound):
		apierrors.NotFound(c, "Resume record not found")
	case errors.Is(err, services.ErrPermissionDenied):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrNegativeAmount),
		errors.Is(err, services.ErrInvalidRequirementType),
		errors.Is(err, services.ErrInvalidOfferStatus),
		errors.Is(err, services.ErrInvalidJoiningStatus),
		errors.Is(err, services.ErrInvalidRegistrationFee):
		apierrors.BadRequest(c, err.Error())
	default:
		logrus.WithError(err).Error("resume operation failed")
		apierrors.InternalError(c, "")
	}
}
