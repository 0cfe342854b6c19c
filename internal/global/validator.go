package global

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mcweed-code/casa-fabio-parts-pro/internal/pricing"
)

// InitValidator initializes the validator and registers custom rules.
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("markup_mode", validateMarkupMode)
}

// validateNoXSS rejects values carrying script injection markers. Applied to
// free-text fields that end up rendered by the storefront.
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateMarkupMode accepts the three coefficient application modes.
func validateMarkupMode(fl validator.FieldLevel) bool {
	switch pricing.Mode(fl.Field().String()) {
	case pricing.ModeGeneral, pricing.ModeByCategory, pricing.ModeBySubcategory:
		return true
	}
	return false
}
