package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MsgResponse is the error/ack envelope every route uses: {"msg": "..."}.
type MsgResponse struct {
	Msg string `json:"msg"`
}

func RespondMsg(c *gin.Context, code int, msg string) {
	c.JSON(code, MsgResponse{Msg: msg})
}

func RespondError(c *gin.Context, code int, msg string) {
	c.JSON(code, MsgResponse{Msg: msg})
}

// HandleServiceError converts service sentinel errors into the wire shape.
// Anything unrecognized is a 500 with a generic message so no internal
// detail leaks to the client.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusBadRequest, "Invalid Credentials")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "User already exists")
	case errors.Is(err, ErrPrimaryEmailRequired):
		RespondError(c, http.StatusBadRequest, "Primary user's email is required for family accounts.")
	case errors.Is(err, ErrPrimaryAccountNotFound):
		RespondError(c, http.StatusNotFound, "The specified elderly user account was not found.")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, ErrNotOwner):
		RespondError(c, http.StatusUnauthorized, "Not authorized")
	case errors.Is(err, ErrNoContactNumber):
		RespondError(c, http.StatusBadRequest, "No family contact number set up.")
	case errors.Is(err, ErrEmptyMessage):
		RespondError(c, http.StatusBadRequest, "Message is required")
	case errors.Is(err, ErrEmptyQuery):
		RespondError(c, http.StatusBadRequest, "Search query is required")
	case errors.Is(err, ErrNotificationFailed), errors.Is(err, ErrUpstreamFailure):
		RespondError(c, http.StatusInternalServerError, "Server Error")
	default:
		RespondError(c, http.StatusInternalServerError, "Server Error")
	}
}
