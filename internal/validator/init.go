package validator

import (
	"ctchen222/tictactoe-console/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())

	// boardsize accepts 0 (pick at random) or a supported board size
	if err := validate.RegisterValidation("boardsize", func(fl validator.FieldLevel) bool {
		size := int(fl.Field().Int())
		return size == 0 || game.IsSupportedSize(size)
	}); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}
