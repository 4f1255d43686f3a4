package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/nfrund/psyclinic/internal/carousel"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// CarouselQuery is the state a carousel fragment request carries. Width 0
// means the page has not measured its viewport. Index and page are bounded
// well above any roster size so window arithmetic cannot overflow.
type CarouselQuery struct {
	Width  int    `query:"width" validate:"gte=0,lte=100000"`
	Index  int    `query:"index" validate:"gte=0,lte=10000"`
	Action string `query:"action" validate:"omitempty,oneof=mount resize next prev page"`
	Page   int    `query:"page" validate:"gte=0,lte=10000"`
}

// action defaults to mount so a bare request loads the roster.
func (q CarouselQuery) action() carousel.Action {
	if q.Action == "" {
		return carousel.ActionMount
	}
	return carousel.Action(q.Action)
}
