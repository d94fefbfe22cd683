package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/checklist/internal/apierror"
	"github.com/mdouchement/checklist/internal/server/serializer"
	"github.com/mdouchement/checklist/internal/server/service"
)

// item contains all item handlers.
type item struct {
	items service.ItemService
}

type itemParams struct {
	Content string `json:"content"`
}

///// List
////
//

// List returns all the non-deleted items of the current owner.
func (h *item) List(c echo.Context) error {
	items, err := h.items.List(currentSession(c).UserUUID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Success(serializer.M{
		"data": items,
	}))
}

///// Create
////
//

// Create inserts a new item owned by the current owner.
func (h *item) Create(c echo.Context) error {
	// Filter params
	var params itemParams
	if err := c.Bind(&params); err != nil {
		return apierror.Validation("Could not get item's params.")
	}
	if params.Content == "" {
		return apierror.Validation("content must not be empty")
	}

	item, err := h.items.Create(params.Content, currentSession(c).UserUUID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, serializer.Success(serializer.M{
		"message": "Todo created successfully",
		"data":    item,
	}))
}

///// Update
////
//

// Update overwrites the content of one of the current owner's items.
func (h *item) Update(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	// Filter params
	var params itemParams
	if err := c.Bind(&params); err != nil {
		return apierror.Validation("Could not get item's params.")
	}
	if params.Content == "" {
		return apierror.Validation("content must not be empty")
	}

	item, err := h.items.Update(id, params.Content, currentSession(c).UserUUID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Success(serializer.M{
		"message": "Todo updated successfully",
		"data":    item,
	}))
}

///// Complete / Uncomplete
////
//

// Complete marks one of the current owner's items as completed.
func (h *item) Complete(c echo.Context) error {
	return h.toggle(c, true, "Todo marked as completed")
}

// Uncomplete marks one of the current owner's items as not completed.
func (h *item) Uncomplete(c echo.Context) error {
	return h.toggle(c, false, "Todo marked as uncompleted")
}

func (h *item) toggle(c echo.Context, completed bool, message string) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	err = h.items.ToggleComplete(id, currentSession(c).UserUUID, completed)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Success(serializer.M{
		"message": message,
	}))
}

///// Delete
////
//

// Delete marks one of the current owner's items as deleted. The record
// persists but no longer appears in listings.
func (h *item) Delete(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	err = h.items.SoftDelete(id, currentSession(c).UserUUID)
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func itemID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apierror.Validation("id must be an integer")
	}
	return id, nil
}
