package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentMethod is a redacted saved-card summary. Raw card numbers are never
// stored; GatewayToken is the reference submitted instead of card fields when
// a saved method is selected.
type PaymentMethod struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID       string `gorm:"index;column:user_id;size:64" json:"userId"`
	Brand        string `gorm:"column:brand;size:32" json:"brand"`
	LastFour     string `gorm:"column:last_four;size:4" json:"lastFour"`
	ExpiryMonth  int    `gorm:"column:expiry_month" json:"expiryMonth"`
	ExpiryYear   int    `gorm:"column:expiry_year" json:"expiryYear"`
	GatewayToken string `gorm:"column:gateway_token;size:128;uniqueIndex" json:"-"`

	// Extra gateway payload (acquirer ids, fingerprints) kept opaque.
	GatewayMeta datatypes.JSON `gorm:"column:gateway_meta" json:"-"`
}

// CardInput is what the payment form submits when not using a saved method.
type CardInput struct {
	Number      string `json:"cardNumber"`
	Holder      string `json:"cardHolder"`
	ExpiryMonth int    `json:"expiryMonth"`
	ExpiryYear  int    `json:"expiryYear"`
	CVV         string `json:"cvv"`
	SaveCard    bool   `json:"saveCard"`
}
