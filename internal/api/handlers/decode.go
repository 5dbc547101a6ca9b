package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxBodyBytes предел размера тела запроса, 1 MiB
const maxBodyBytes = 1 << 20

// DecodeJSON читает и разбирает JSON-тело запроса в dst.
// Неизвестные поля не считаются ошибкой.
func DecodeJSON(r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
