package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/checklist/internal/apierror"
	"github.com/mdouchement/checklist/internal/server/serializer"
	"github.com/mdouchement/checklist/internal/server/service"
)

// auth contains all authentication handlers.
type auth struct {
	users service.UserService
}

///// Register
////
//

// Register handler is used to register the user.
func (h *auth) Register(c echo.Context) error {
	// Filter params
	var params service.RegisterParams
	if err := c.Bind(&params); err != nil {
		return apierror.Validation("Could not get user's params.")
	}

	// Full schema validation belongs to the upstream gateway, these are
	// guard clauses only.
	if len(params.FirstName) < 2 || len(params.FirstName) > 100 {
		return apierror.Validation("first_name must be between 2 and 100 characters")
	}
	if len(params.LastName) < 2 || len(params.LastName) > 100 {
		return apierror.Validation("last_name must be between 2 and 100 characters")
	}
	if !strings.Contains(params.Email, "@") {
		return apierror.Validation("email must be a valid email")
	}
	if len(params.Password) < 6 {
		return apierror.Validation("password must be at least 6 characters")
	}

	user, err := h.users.Register(params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, serializer.Success(serializer.M{
		"message": "User created successfully",
		"data":    serializer.User(user),
	}))
}

///// Login
////
//

// Login authenticates a user and returns a fresh token.
func (h *auth) Login(c echo.Context) error {
	// Filter params
	var params service.LoginParams
	if err := c.Bind(&params); err != nil {
		return apierror.Validation("Could not get credentials.")
	}

	if params.Email == "" || params.Password == "" {
		return apierror.Validation("No email or password provided.")
	}

	token, err := h.users.Login(c.Request().Context(), params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Token(token))
}

///// Logout
////
//

// Logout revokes the token presented by the request.
func (h *auth) Logout(c echo.Context) error {
	err := h.users.Logout(c.Request().Context(), currentToken(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Success(serializer.M{
		"message": "Logged out successfully",
	}))
}
