package handler

import "github.com/labstack/echo/v4"

// Envelope is the normalized response shape for every endpoint:
// {success, message, data}. Errors use the same shape via the central error
// handler; no partial-success variants exist.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// respond writes a success envelope.
func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}
