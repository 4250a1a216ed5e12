package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/application/service"
	"github.com/invinci009/rmw/internal/domain/enum"
	"github.com/invinci009/rmw/internal/domain/repository"
	"github.com/invinci009/rmw/internal/presentation/http/dto/response"
	"github.com/invinci009/rmw/pkg/pagination"
)

// JobCardHandler handles job card HTTP requests
type JobCardHandler struct {
	jobCardService *service.JobCardService
}

// NewJobCardHandler creates a new job card handler
func NewJobCardHandler(jobCardService *service.JobCardService) *JobCardHandler {
	return &JobCardHandler{jobCardService: jobCardService}
}

// Create handles opening a new job card. Admin only.
func (h *JobCardHandler) Create(c *gin.Context) {
	var input service.CreateJobCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	input.CreatedBy = GetUserRole(c)

	jobCard, err := h.jobCardService.CreateJobCard(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Job card created successfully", jobCard)
}

// List handles listing job cards with filters. Admin only.
func (h *JobCardHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	params := &repository.JobCardFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Phone:         c.Query("phone"),
		VehicleNumber: c.Query("vehicle_number"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.JobCardStatus(statusStr)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid job card status")
			return
		}
		params.Status = &status
	}

	result, err := h.jobCardService.ListJobCards(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Job cards retrieved successfully", result)
}

// Get handles fetching one job card. Admin only.
func (h *JobCardHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job card ID")
		return
	}

	jobCard, err := h.jobCardService.GetJobCard(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Job card retrieved successfully", jobCard)
}

// Update handles a partial job card update. Admin only.
func (h *JobCardHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job card ID")
		return
	}

	var input service.UpdateJobCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	input.UpdatedBy = GetUserRole(c)

	jobCard, err := h.jobCardService.UpdateJobCard(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Job card updated successfully", jobCard)
}

// Delete handles removing a job card. Admin only.
func (h *JobCardHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job card ID")
		return
	}

	if err := h.jobCardService.DeleteJobCard(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Job card deleted successfully", nil)
}

// Track handles the public tracking lookup by job card number or phone
func (h *JobCardHandler) Track(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		query = c.Query("query")
	}

	results, err := h.jobCardService.Track(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tracking details retrieved successfully", results)
}

// VehicleHistory handles the vehicle service history lookup. The phone comes
// from the query, falling back to the authenticated customer's own number.
func (h *JobCardHandler) VehicleHistory(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		phone = GetUserPhone(c)
	}
	if phone == "" {
		response.BadRequest(c, "Phone is required")
		return
	}

	history, err := h.jobCardService.GetVehicleHistory(c.Request.Context(), phone)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle history retrieved successfully", history)
}
