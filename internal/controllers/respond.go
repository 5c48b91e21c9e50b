package controllers

import (
	"net/http"

	"github.com/aurumtrade/aurum-api/internal/models"
)

// genericFailures are the action messages that stand in for an unexpected
// persistence or provider error; they map to 500. Every other failure is the
// caller's to fix.
var genericFailures = map[string]bool{
	"Failed to signup.":          true,
	"Failed to login.":           true,
	"Failed to create news.":     true,
	"Failed to edit the news.":   true,
	"Failed to delete the blog.": true,
	"Failed to send the query.":  true,
}

// statusFor maps an action envelope to an HTTP status. The envelope itself is
// the behavioral contract; the status is a convenience for HTTP clients.
func statusFor(res models.ActionResult, okStatus int) int {
	if res.Success {
		return okStatus
	}
	switch res.Message {
	case models.MsgUnauthorized:
		return http.StatusUnauthorized
	case models.MsgForbidden, models.MsgNotAdmin:
		return http.StatusForbidden
	}
	if genericFailures[res.Message] {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
