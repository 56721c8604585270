package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"blogicum/internal/errors"
	"blogicum/internal/service"
)

// CommentHandler handles comment mutation endpoints.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentRequest represents a comment create/edit request.
type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// AddComment godoc
// @Summary Add a comment to a post
// @Description Any existing post accepts comments; no visibility filter applies.
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post_id path int true "Post ID"
// @Param request body CommentRequest true "Comment data"
// @Success 201 {object} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts/{post_id}/comments [post]
func (h *CommentHandler) AddComment(c echo.Context) error {
	authorID, ok := actingUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	postID, err := idParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: errors.ErrPostNotFound.Error(),
			Code:  "POST_NOT_FOUND",
		})
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	comment, err := h.commentService.Add(c.Request().Context(), postID, authorID, req.Text)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, comment)
}

// UpdateComment godoc
// @Summary Edit an owned comment
// @Description Non-owners receive the same 404 as a nonexistent comment.
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post_id path int true "Post ID"
// @Param id path int true "Comment ID"
// @Param request body CommentRequest true "Comment data"
// @Success 200 {object} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts/{post_id}/comments/{id} [put]
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	authorID, ok := actingUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	postID, err := idParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: errors.ErrCommentNotFound.Error(),
			Code:  "COMMENT_NOT_FOUND",
		})
	}
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: errors.ErrCommentNotFound.Error(),
			Code:  "COMMENT_NOT_FOUND",
		})
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	comment, err := h.commentService.Update(c.Request().Context(), postID, id, authorID, req.Text)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary Delete an owned comment
// @Description Non-owners receive the same 404 as a nonexistent comment.
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param post_id path int true "Post ID"
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts/{post_id}/comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	authorID, ok := actingUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	postID, err := idParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: errors.ErrCommentNotFound.Error(),
			Code:  "COMMENT_NOT_FOUND",
		})
	}
	id, err := idParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: errors.ErrCommentNotFound.Error(),
			Code:  "COMMENT_NOT_FOUND",
		})
	}

	if err := h.commentService.Delete(c.Request().Context(), postID, id, authorID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "comment deleted",
	})
}
