package product

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"

	"github.com/earg-org/earg-api/internal/db/models"
	"github.com/earg-org/earg-api/internal/validation"
)

// request is the product payload of the admin ui. Prices and stock are
// accepted as numbers or numeric strings.
type request struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"        validate:"notblank,max=200"`
	Price       json.Number     `json:"price"       validate:"required,price"`
	OfferPrice  json.Number     `json:"offerPrice"  validate:"omitempty,price"`
	Category    string          `json:"category"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	Description string          `json:"description"`
	Material    string          `json:"material"`
	Dimensions  string          `json:"dimensions"`
	Origin      string          `json:"origin"`
	Impact      string          `json:"impact"`
	Stock       json.Number     `json:"stock"       validate:"omitempty,stock"`
	Images      []string        `json:"images"      validate:"dive,httpurl"`
	Details     json.RawMessage `json:"details"`
	Story       json.RawMessage `json:"story"`
}

var messages = validation.Messages{ //nolint:gochecknoglobals
	"Name.notblank":    "Product name is required",
	"Name.max":         "Product name must be 200 characters or less",
	"Price.required":   "Valid price is required (max 2 decimal places)",
	"Price.price":      "Valid price is required (max 2 decimal places)",
	"OfferPrice.price": "Offer price must be a valid amount (max 2 decimal places)",
	"Stock.stock":      "Stock must be a non-negative integer",
	"Images.httpurl":   "Image #%d has an invalid URL",
}

func (r *request) validate() []string {
	return validation.Check(r, messages)
}

// model converts a validated request. Empty image slots are dropped.
func (r *request) model() *models.Product {
	p := &models.Product{
		ID:          strings.TrimSpace(r.ID),
		Name:        strings.TrimSpace(r.Name),
		Category:    r.Category,
		Rating:      r.Rating,
		Reviews:     r.Reviews,
		Description: r.Description,
		Material:    r.Material,
		Dimensions:  r.Dimensions,
		Origin:      r.Origin,
		Impact:      r.Impact,
		Images:      datatypes.JSONSlice[string]{},
		Details:     datatypes.JSON(r.Details),
		Story:       datatypes.JSON(r.Story),
	}

	p.Price, _ = r.Price.Float64() //nolint:errcheck // validated

	if r.OfferPrice != "" {
		offer, _ := r.OfferPrice.Float64() //nolint:errcheck // validated
		p.OfferPrice = &offer
	}

	if r.Stock != "" {
		stock, _ := r.Stock.Int64() //nolint:errcheck // validated
		p.Stock = int(stock)
	}

	for _, img := range r.Images {
		if img = strings.TrimSpace(img); img != "" {
			p.Images = append(p.Images, img)
		}
	}

	return p
}
