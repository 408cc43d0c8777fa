package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskloop/todo-api/internal/api/metrics"
	"github.com/taskloop/todo-api/internal/core/ports"
)

// TodoHandler handles HTTP requests for to-do operations. Every route it
// serves sits behind the Auth middleware, so the caller identity is always
// available from the request context.
type TodoHandler struct {
	service ports.TodoService
}

func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// Create handles POST /api/todos.
//
// @Summary      Create a new todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      todoRequest  true  "Todo details"
// @Success      201   {object}  todoResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	todo, err := h.service.Create(c.Request().Context(), userID, req.Title, req.Description)
	if err != nil {
		return err
	}

	metrics.TodosCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toTodoResponse(todo))
}

// List handles GET /api/todos. With positive page and limit query
// parameters the response is a {data, pagination} envelope; otherwise the
// full list is returned as a plain array. An unparsable page or limit is
// treated the same as an absent one.
//
// @Summary      List todos for the authenticated user
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Items per page"
// @Success      200    {object}  listTodosResponse
// @Failure      401    {object}  messageResponse
// @Failure      500    {object}  messageResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListTodosInput{
		OwnerID: userID,
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return err
	}

	if result.Pagination == nil {
		return c.JSON(http.StatusOK, toTodoResponses(result.Items))
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Update handles PUT /api/todos/:id.
//
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Todo id"
// @Param        body  body      todoRequest  true  "New todo contents"
// @Success      200   {object}  todoResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	todo, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), req.Title, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Delete handles DELETE /api/todos/:id.
//
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Todo id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Todo deleted successfully"})
}
