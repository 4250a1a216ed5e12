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

// BookingHandler handles booking HTTP requests
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create handles creating a booking. Public; no login required.
func (h *BookingHandler) Create(c *gin.Context) {
	var input service.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Booking created successfully", booking)
}

// List handles listing bookings. Admins see everything and may filter by
// phone; customers see only their own.
func (h *BookingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	params := &repository.BookingFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}

	if IsAdmin(c) {
		params.Phone = c.Query("phone")
	} else {
		phone := GetUserPhone(c)
		if phone == "" {
			response.Unauthorized(c, "Login required")
			return
		}
		params.Phone = phone
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.BookingStatus(statusStr)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid booking status")
			return
		}
		params.Status = &status
	}

	result, err := h.bookingService.ListBookings(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bookings retrieved successfully", result)
}

// Get handles fetching one booking
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !IsAdmin(c) && booking.Phone != GetUserPhone(c) {
		response.Forbidden(c, "Access denied")
		return
	}

	response.OK(c, "Booking retrieved successfully", booking)
}

type updateBookingStatusRequest struct {
	Status enum.BookingStatus `json:"status" binding:"required"`
}

// UpdateStatus handles setting a booking's status. Admin only.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	var req updateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Status is required")
		return
	}

	booking, err := h.bookingService.UpdateBookingStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Booking status updated successfully", booking)
}

// Cancel handles cancelling a booking. Customers may cancel their own;
// admins may cancel any.
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	if !IsAdmin(c) {
		booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		if booking.Phone != GetUserPhone(c) {
			response.Forbidden(c, "Access denied")
			return
		}
	}

	if err := h.bookingService.CancelBooking(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Booking cancelled successfully", nil)
}
