package controllers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shhplace/models"
)

var validate = validator.New()

// FieldError describes one failed validation rule on a request struct.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value,omitempty"`
}

// ValidateStruct runs the shared validator and reports per-field failures.
func ValidateStruct(s interface{}) []*FieldError {
	var out []*FieldError
	if err := validate.Struct(s); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			out = append(out, &FieldError{
				Field: fe.Field(),
				Tag:   fe.Tag(),
				Value: fmt.Sprintf("%v", fe.Param()),
			})
		}
	}
	return out
}

func badReq(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResp{OK: false, Error: msg})
}

func serverErr(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResp{OK: false, Error: err.Error()})
}
