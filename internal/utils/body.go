package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var errEmptyBody = errors.New("request body cannot be empty")

// decodeJSON reads a single JSON document of at most maxBodyBytes into dest.
func decodeJSON(r *http.Request, dest any) error {

	if r.Body == nil {
		return errEmptyBody
	}
	defer r.Body.Close()

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes+1))

	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	if dec.InputOffset() > maxBodyBytes {
		return fmt.Errorf("request body exceeds %d bytes", maxBodyBytes)
	}

	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}

	return nil
}

func validateStruct(validate *validator.Validate, data any) error {
	if err := validate.Struct(data); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return validationErrs
		}
		return fmt.Errorf("unexpected validation error: %w", err)
	}

	return nil
}
