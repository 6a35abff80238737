package utils

import "errors"

// Common application errors used across services.
var (
	ErrProductNotFound      = errors.New("PRODUCT_NOT_FOUND")
	ErrInvalidHandle        = errors.New("INVALID_HANDLE")
	ErrPlanNotFound         = errors.New("PLAN_NOT_FOUND")
	ErrEmptyCart            = errors.New("EMPTY_CART")
	ErrValidationFailed     = errors.New("VALIDATION_FAILED")
	ErrPaymentDeclined      = errors.New("PAYMENT_DECLINED")
	ErrPaymentUnavailable   = errors.New("PAYMENT_UNAVAILABLE")
	ErrFinancingUnavailable = errors.New("FINANCING_UNAVAILABLE")
	ErrLoanRejected         = errors.New("LOAN_REJECTED")
	ErrOrderNotFound        = errors.New("ORDER_NOT_FOUND")
	ErrInvalidSignature     = errors.New("INVALID_SIGNATURE")
)
