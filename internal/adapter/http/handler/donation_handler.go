package handler

import (
	"donation-gateway/internal/adapter/http/dto"
	"donation-gateway/internal/core/ports"
	"donation-gateway/pkg/apperror"
	"donation-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// DonationHandler handles the donation order and verification endpoints.
type DonationHandler struct {
	orderSvc        ports.OrderService
	verificationSvc ports.VerificationService
}

// NewDonationHandler creates a new DonationHandler.
func NewDonationHandler(orderSvc ports.OrderService, verificationSvc ports.VerificationService) *DonationHandler {
	return &DonationHandler{orderSvc: orderSvc, verificationSvc: verificationSvc}
}

// CreateOrder handles POST /create-order.
// The gateway order is returned to the client unchanged; the hosted checkout
// consumes it as-is.
func (h *DonationHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A non-numeric amount fails binding; same rejection as a missing one.
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	order, err := h.orderSvc.CreateOrder(c.Request.Context(), ports.CreateOrderRequest{
		AmountMajor: req.Amount,
		ClientIP:    c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, order)
}

// VerifyPayment handles POST /verify-payment.
func (h *DonationHandler) VerifyPayment(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.VerifyError(c, apperror.ErrMissingParameters())
		return
	}

	err := h.verificationSvc.VerifyPayment(c.Request.Context(), ports.ConfirmationRequest{
		OrderID:   req.RazorpayOrderID,
		PaymentID: req.RazorpayPaymentID,
		Signature: req.RazorpaySignature,
		ClientIP:  c.ClientIP(),
	})
	if err != nil {
		response.VerifyError(c, err)
		return
	}

	response.Verified(c)
}
