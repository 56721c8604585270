package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"blogicum/internal/config"
	"blogicum/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	feedHandler *handler.FeedHandler,
	postHandler *handler.PostHandler,
	commentHandler *handler.CommentHandler,
	profileHandler *handler.ProfileHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Auth routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Public read routes
	api.GET("/posts", feedHandler.Index)
	api.GET("/posts/:id", feedHandler.PostDetail)
	api.GET("/categories/:slug/posts", feedHandler.CategoryPosts)

	// Profile listing resolves the viewer from an optional bearer token:
	// the owner sees all of their posts, everyone else the filtered set.
	// A missing or invalid token degrades to an anonymous view.
	api.GET("/profiles/:username", feedHandler.Profile, echojwt.WithConfig(echojwt.Config{
		SigningKey:             []byte(cfg.JWTSecret),
		TokenLookup:            "header:" + echo.HeaderAuthorization,
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	}))

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Post routes
	secured.POST("/posts", postHandler.CreatePost)
	secured.PUT("/posts/:id", postHandler.UpdatePost)
	secured.DELETE("/posts/:id", postHandler.DeletePost)

	// Comment routes
	secured.POST("/posts/:post_id/comments", commentHandler.AddComment)
	secured.PUT("/posts/:post_id/comments/:id", commentHandler.UpdateComment)
	secured.DELETE("/posts/:post_id/comments/:id", commentHandler.DeleteComment)

	// Own profile routes
	secured.GET("/profile", profileHandler.GetProfile)
	secured.PUT("/profile", profileHandler.UpdateProfile)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
