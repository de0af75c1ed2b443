package client

import (
	"context"
	"net/http"
)

// PaymentRequest goes to the mocked gateway. Either the raw card fields or a
// saved-method token is set, never both.
type PaymentRequest struct {
	BookingID string `json:"bookingId"`
	Amount    int64  `json:"amount"`

	CardNumber  string `json:"cardNumber,omitempty"`
	CardHolder  string `json:"cardHolder,omitempty"`
	ExpiryMonth int    `json:"expiryMonth,omitempty"`
	ExpiryYear  int    `json:"expiryYear,omitempty"`
	CVV         string `json:"cvv,omitempty"`

	MethodToken string `json:"methodToken,omitempty"`
}

type PaymentResult struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	GatewayToken  string `json:"gatewayToken,omitempty"`
}

func (c *Client) ProcessPayment(ctx context.Context, token string, req PaymentRequest) (PaymentResult, error) {
	var result PaymentResult
	if err := c.do(ctx, http.MethodPost, c.paymentURL+"/payments", token, nil, req, &result); err != nil {
		return PaymentResult{}, err
	}
	return result, nil
}
