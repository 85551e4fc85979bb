package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decode reads a JSON body into T. An empty body yields the zero value.
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	err := json.NewDecoder(body).Decode(&payload)
	if err != nil && !errors.Is(err, io.EOF) {
		return payload, fmt.Errorf("decode request: %w", err)
	}
	return payload, nil
}
