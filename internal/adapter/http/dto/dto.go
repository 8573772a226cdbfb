package dto

// CreateOrderRequest is the /create-order request body.
// Amount is a pointer so a missing field and an explicit zero are
// distinguishable; both are rejected.
type CreateOrderRequest struct {
	Amount *float64 `json:"amount"`
}

// VerifyPaymentRequest is the /verify-payment request body. Field names match
// what the hosted checkout hands to the client; presence is checked by the
// verification service, not by binding tags.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}
