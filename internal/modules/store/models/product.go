package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlaceholderImageURL is substituted whenever image generation returns no
// payload, so the preview never shows an empty state.
const PlaceholderImageURL = "https://picsum.photos/400/400"

// Product is an AI-generated product record. Regeneration overwrites the
// previous record wholesale; there is no versioning.
type Product struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	// Merchant brief
	Name     string `gorm:"type:text;not null" json:"name"`
	Category string `gorm:"type:text" json:"category,omitempty"`
	Tone     string `gorm:"type:text" json:"tone,omitempty"`
	Language string `gorm:"type:text" json:"language,omitempty"`

	// Generated content
	Description string  `gorm:"type:text" json:"description"`
	ImageURL    string  `gorm:"type:text;not null" json:"image_url"`
	Price       float64 `gorm:"type:decimal(12,2);not null;default:0" json:"price"`

	// Derivative marketing content, keyed by platform
	MarketingCopy datatypes.JSON `gorm:"type:jsonb" json:"marketing_copy,omitempty"`
	SEO           datatypes.JSON `gorm:"type:jsonb" json:"seo,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "store_products"
}

// BeforeCreate sets UUID before creating
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// GenerateProductRequest is the merchant brief for one generation run.
type GenerateProductRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Category string `json:"category,omitempty" validate:"max=100"`
	Tone     string `json:"tone,omitempty" validate:"max=50"`
	Language string `json:"language,omitempty" validate:"max=50"`
}

// ImportRequest carries unstructured pasted text for smart import.
type ImportRequest struct {
	RawText string `json:"raw_text" validate:"required"`
}

// ImportResult is the structured extraction returned by the AI service.
type ImportResult struct {
	SuggestedName     string  `json:"suggestedName"`
	Category          string  `json:"category"`
	EstimatedPriceMAD float64 `json:"estimatedPriceMAD"`
}

// AdCopyRequest selects the target platform for derivative ad copy.
type AdCopyRequest struct {
	Platform string `json:"platform" validate:"required"`
}

// AdCopyResponse returns the (possibly cached) platform caption.
type AdCopyResponse struct {
	Platform string `json:"platform"`
	Copy     string `json:"copy"`
	Cached   bool   `json:"cached"`
}

// SEOData is the structured SEO metadata for a product page.
type SEOData struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords"`
}

// ProfitRequest are the two profit calculator inputs.
type ProfitRequest struct {
	Cost float64 `json:"cost"`
	Sell float64 `json:"sell"`
}

// ProfitResult is derived synchronously, no external call involved.
type ProfitResult struct {
	Profit float64 `json:"profit"`
	Margin float64 `json:"margin"` // percent of the selling price
}
