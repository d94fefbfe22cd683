package server

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mdouchement/checklist/internal/database"
	"github.com/mdouchement/checklist/internal/server/middlewares"
	"github.com/mdouchement/checklist/internal/server/service"
	"github.com/mdouchement/checklist/internal/session"
)

// An IOC is an Inversion Of Control pattern used to init the server package.
// The database and session store clients are constructed once at startup
// and handed over here, no package holds ambient state.
type IOC struct {
	Version        string
	Database       database.Client
	Sessions       session.Manager
	NoRegistration bool
}

// EchoEngine instantiates the web server.
func EchoEngine(ctrl IOC) *echo.Echo {
	engine := echo.New()
	engine.Use(middleware.Recover())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	engine.Use(middleware.Gzip())

	engine.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${status}] ${method} ${uri} (${bytes_in}) ${latency_human}\n",
		// Credentials travel through these routes.
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/api/users/login" || c.Path() == "/api/users/register"
		},
	}))
	engine.Binder = middlewares.NewBinder()
	// Error handler
	engine.HTTPErrorHandler = middlewares.HTTPErrorHandler

	////////////
	// Router //
	////////////

	authenticate := middlewares.Authenticate(ctrl.Sessions)

	router := engine.Group("/api")

	// generic handlers
	//
	engine.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version": ctrl.Version,
		})
	})

	//
	// auth handlers
	//
	auth := &auth{
		users: service.NewUser(ctrl.Database, ctrl.Sessions),
	}
	users := router.Group("/users")
	if !ctrl.NoRegistration {
		users.POST("/register", auth.Register)
	}
	users.POST("/login", auth.Login)
	users.POST("/logout", auth.Logout, authenticate)

	//
	// item handlers
	//
	item := &item{
		items: service.NewItem(ctrl.Database),
	}
	todos := router.Group("/todos", authenticate)
	todos.GET("", item.List)
	todos.POST("", item.Create)
	todos.PUT("/:id", item.Update)
	todos.DELETE("/:id", item.Delete)
	// Completion routes as the front end consumes them.
	router.PUT("/markComplete/:id", item.Complete, authenticate)
	router.PUT("/markUncomplete/:id", item.Uncomplete, authenticate)

	return engine
}

// PrintRoutes prints the Echo engine exposed routes.
func PrintRoutes(e *echo.Echo) {
	ignored := map[string]bool{
		"":   true,
		".":  true,
		"/*": true,
	}

	routes := e.Routes()
	sort.Slice(routes, func(i int, j int) bool {
		return routes[i].Path < routes[j].Path
	})

	fmt.Println("Routes:")
	for _, route := range routes {
		if ignored[route.Path] {
			continue
		}
		fmt.Printf("%6s %s\n", route.Method, route.Path)
	}
}

func currentSession(c echo.Context) *session.Record {
	record, ok := c.Get(middlewares.CurrentSessionContextKey).(*session.Record)
	if ok {
		return record
	}
	return nil
}

func currentToken(c echo.Context) string {
	token, ok := c.Get(middlewares.CurrentTokenContextKey).(string)
	if ok {
		return token
	}
	return ""
}
