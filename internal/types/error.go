package types

import "fmt"

// CustomError carries an HTTP status code and an error type tag through the
// fiber error handler into the uniform error response.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}
