package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hotel-portal/client"
	"hotel-portal/models"
	"hotel-portal/utils"
)

// PaymentError carries a user-facing title picked from the gateway's message.
type PaymentError struct {
	Title   string
	Message string
}

func (e *PaymentError) Error() string {
	return e.Title + ": " + e.Message
}

// PaymentInput is either raw card fields or a saved-method reference.
type PaymentInput struct {
	Card          *models.CardInput `json:"card,omitempty"`
	SavedMethodID uint              `json:"savedMethodId,omitempty"`
}

// PaymentService validates card input, submits to the mocked gateway and
// manages the saved redacted card summaries.
type PaymentService struct {
	api PaymentAPI
	db  *gorm.DB

	now func() time.Time
}

func NewPaymentService(api PaymentAPI, db *gorm.DB) *PaymentService {
	return &PaymentService{api: api, db: db, now: time.Now}
}

// ValidateCard runs the client-side checks in a fixed order: length before
// checksum, so a short number reports a length error rather than a Luhn one.
func (s *PaymentService) ValidateCard(card models.CardInput) *models.FieldError {
	number := utils.StripCardNumber(card.Number)
	if !utils.DigitsOnly(number) {
		return models.NewFieldError("cardNumber", "card number must contain digits only")
	}
	if len(number) < 15 || len(number) > 19 {
		return models.NewFieldError("cardNumber", "card number must be 15-19 digits")
	}
	if !utils.Luhn(number) {
		return models.NewFieldError("cardNumber", "card number failed checksum")
	}

	holder := strings.TrimSpace(card.Holder)
	if len(holder) < 3 || len(holder) > 100 {
		return models.NewFieldError("cardHolder", "cardholder name must be 3-100 characters")
	}

	if card.ExpiryMonth < 1 || card.ExpiryMonth > 12 {
		return models.NewFieldError("expiryMonth", "expiry month must be between 1 and 12")
	}
	if utils.ExpiryInPast(card.ExpiryMonth, card.ExpiryYear, s.now()) {
		return models.NewFieldError("expiryYear", "card has expired")
	}

	if !utils.DigitsOnly(card.CVV) || len(card.CVV) < 3 || len(card.CVV) > 4 {
		return models.NewFieldError("cvv", "CVV must be 3-4 digits")
	}
	return nil
}

// Pay submits the payment for a booking. Raw card fields never touch the
// portal database; only the redacted summary is kept when SaveCard is set.
func (s *PaymentService) Pay(ctx context.Context, sess *models.Session, booking models.Booking, input PaymentInput) (client.PaymentResult, error) {
	req := client.PaymentRequest{
		BookingID: booking.ID,
		Amount:    booking.TotalPrice,
	}

	var card *models.CardInput
	switch {
	case input.SavedMethodID != 0:
		method, err := s.getMethod(ctx, sess.User.ID, input.SavedMethodID)
		if err != nil {
			return client.PaymentResult{}, err
		}
		req.MethodToken = method.GatewayToken
	case input.Card != nil:
		if ferr := s.ValidateCard(*input.Card); ferr != nil {
			return client.PaymentResult{}, ferr
		}
		card = input.Card
		number := utils.StripCardNumber(card.Number)
		req.CardNumber = number
		req.CardHolder = strings.TrimSpace(card.Holder)
		req.ExpiryMonth = card.ExpiryMonth
		req.ExpiryYear = utils.NormalizeExpiryYear(card.ExpiryYear)
		req.CVV = card.CVV
	default:
		return client.PaymentResult{}, models.NewFieldError("card", "card details or a saved method are required")
	}

	result, err := s.api.ProcessPayment(ctx, sess.Token, req)
	if err != nil {
		return client.PaymentResult{}, mapPaymentError(err)
	}

	if card != nil && card.SaveCard {
		s.saveMethod(ctx, sess.User.ID, *card, result)
	}
	return result, nil
}

// mapPaymentError picks a title from known gateway message substrings;
// anything unrecognized falls back to a generic payment error. An expired
// token is not a payment problem: it passes through for the session layer.
func mapPaymentError(err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		return err
	}

	var rejected *client.RejectedError
	if !errors.As(err, &rejected) {
		return &PaymentError{Title: "Payment failed", Message: "payment could not be processed, please try again"}
	}

	msg := strings.ToLower(rejected.Message)
	switch {
	case strings.Contains(msg, "insufficient funds"):
		return &PaymentError{Title: "Insufficient funds", Message: rejected.Message}
	case strings.Contains(msg, "declined"):
		return &PaymentError{Title: "Card declined", Message: rejected.Message}
	case strings.Contains(msg, "invalid"):
		return &PaymentError{Title: "Invalid payment details", Message: rejected.Message}
	}
	return &PaymentError{Title: "Payment failed", Message: rejected.Message}
}

func (s *PaymentService) getMethod(ctx context.Context, userID string, id uint) (models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&method).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return method, models.NewFieldError("savedMethodId", "saved payment method not found")
		}
		return method, fmt.Errorf("load payment method: %w", err)
	}
	return method, nil
}

// saveMethod is best-effort: a failed save never fails the payment itself.
func (s *PaymentService) saveMethod(ctx context.Context, userID string, card models.CardInput, result client.PaymentResult) {
	number := utils.StripCardNumber(card.Number)
	token := result.GatewayToken
	if token == "" {
		token = uuid.NewString()
	}

	method := models.PaymentMethod{
		UserID:       userID,
		Brand:        utils.CardBrand(number),
		LastFour:     number[len(number)-4:],
		ExpiryMonth:  card.ExpiryMonth,
		ExpiryYear:   utils.NormalizeExpiryYear(card.ExpiryYear),
		GatewayToken: token,
	}
	if err := s.db.WithContext(ctx).Create(&method).Error; err != nil {
		logrus.WithError(err).Warn("failed to save payment method")
	}
}

func (s *PaymentService) ListMethods(ctx context.Context, userID string) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&methods).Error
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	return methods, nil
}

func (s *PaymentService) DeleteMethod(ctx context.Context, userID string, id uint) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.PaymentMethod{})
	if result.Error != nil {
		return fmt.Errorf("delete payment method: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewFieldError("savedMethodId", "saved payment method not found")
	}
	return nil
}
