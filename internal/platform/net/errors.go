package net

import (
	"net/http"

	perr "mathgate/internal/platform/errors"
)

// HTTPStatus maps a platform error to its HTTP status; nil is 200
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}
