package middlewares

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/checklist/internal/apierror"
	"github.com/mdouchement/checklist/internal/server/serializer"
)

// HTTPErrorHandler is the single place translating typed failures into
// the outward response envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	switch err := err.(type) {
	case *echo.HTTPError:
		log.Printf("Error [ECHO]: %v", err.Internal)
		_ = c.JSON(err.Code, serializer.Failure(fmt.Sprintf("%v", err.Message)))
	case *apierror.Error:
		status := apierror.StatusCode(err)
		if status < http.StatusInternalServerError {
			_ = c.JSON(status, serializer.Failure(err.Message))
			return
		}

		internal(err, c)
	default:
		internal(err, c)
	}
}

func internal(err error, c echo.Context) {
	id := uuid.Must(uuid.NewV4()).String()
	log.Printf("Error [%s]: %s", id, err.Error())

	_ = c.JSON(http.StatusInternalServerError,
		serializer.Failure(fmt.Sprintf("Unexpected error (id: %s)", id)))
}
