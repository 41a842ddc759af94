package finance

import "fmt"

// PaymentError is the taxonomy for payment validation failures. Each code
// maps to a distinct HTTP status and user-facing message in the handlers.
type PaymentError struct {
	Code    string
	Message string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches on code so wrapped instances compare against the sentinels.
func (e *PaymentError) Is(target error) bool {
	t, ok := target.(*PaymentError)
	return ok && t.Code == e.Code
}

const (
	codeInvalidAmount   = "invalidAmount"
	codeOverpayment     = "overpaymentRejected"
	codePaymentNotFound = "paymentNotFound"
)

var (
	// ErrInvalidAmount rejects zero or negative payment amounts.
	ErrInvalidAmount = &PaymentError{
		Code:    codeInvalidAmount,
		Message: "payment amount must be greater than zero",
	}

	// ErrOverpayment rejects amounts exceeding the current outstanding balance.
	ErrOverpayment = &PaymentError{
		Code:    codeOverpayment,
		Message: "amount exceeds outstanding balance",
	}

	// ErrPaymentNotFound signals a reversal request for an unknown payment id.
	ErrPaymentNotFound = &PaymentError{
		Code:    codePaymentNotFound,
		Message: "payment record not found",
	}
)

func newOverpaymentError(amount, balance float64) error {
	return &PaymentError{
		Code:    codeOverpayment,
		Message: fmt.Sprintf("amount %.2f exceeds outstanding balance of %.2f", amount, balance),
	}
}
