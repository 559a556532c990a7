package validator

import (
	"encoding/json"
	"fmt"
	"hotelier/shared/failure"
	"io"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}
}

// Validate decodes the given io.Reader into a value of type T and validates it
// against the struct tags using the validator package.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader) (T, error) {
	var data T

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&data); err != nil {
		return data, failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return data, ValidateStruct(&data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
