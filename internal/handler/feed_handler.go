package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"blogicum/internal/errors"
	"blogicum/internal/service"
)

// FeedHandler handles the public read-side endpoints. It is the only layer
// that reads ambient request context: the clock, the viewer identity and the
// page query parameter all resolve here and pass into the service as values.
type FeedHandler struct {
	feedService service.FeedService
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(feedService service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// Index godoc
// @Summary List visible posts
// @Tags posts
// @Produce json
// @Param page query int false "Page number (1-indexed, clamped)"
// @Success 200 {object} service.PostPage
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts [get]
func (h *FeedHandler) Index(c echo.Context) error {
	page, err := h.feedService.ListIndex(c.Request().Context(), time.Now(), pageParam(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, page)
}

// PostDetail godoc
// @Summary Get a visible post with its comments
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} service.PostDetail
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts/{id} [get]
func (h *FeedHandler) PostDetail(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: errors.ErrPostNotFound.Error(),
			Code:  "POST_NOT_FOUND",
		})
	}

	detail, err := h.feedService.GetPostDetail(c.Request().Context(), id, time.Now())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, detail)
}

// CategoryPosts godoc
// @Summary List visible posts of a visible category
// @Tags posts
// @Produce json
// @Param slug path string true "Category slug"
// @Param page query int false "Page number (1-indexed, clamped)"
// @Success 200 {object} service.CategoryPage
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories/{slug}/posts [get]
func (h *FeedHandler) CategoryPosts(c echo.Context) error {
	page, err := h.feedService.ListByCategory(c.Request().Context(), c.Param("slug"), time.Now(), pageParam(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, page)
}

// Profile godoc
// @Summary Show a user's profile with their posts
// @Description Owners viewing their own profile see all of their posts,
// @Description drafts and scheduled publications included.
// @Tags profiles
// @Produce json
// @Param username path string true "Username"
// @Param page query int false "Page number (1-indexed, clamped)"
// @Success 200 {object} service.ProfilePage
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profiles/{username} [get]
func (h *FeedHandler) Profile(c echo.Context) error {
	viewerID, _ := actingUser(c)

	page, err := h.feedService.ListByAuthor(c.Request().Context(), c.Param("username"), viewerID, time.Now(), pageParam(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, page)
}
