package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Yashkhope01/Blog/internal/domain"
	"github.com/Yashkhope01/Blog/internal/middleware"
	"github.com/Yashkhope01/Blog/internal/service"
)

// CommentHandler exposes comment creation, listing, mutation, and the
// comment-scoped like toggle.
type CommentHandler struct {
	commentService *service.CommentService
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentResponse is a comment with its like set flattened to user ids.
type CommentResponse struct {
	domain.Comment
	Likes []uint `json:"likes"`
}

func toCommentResponse(cm domain.Comment) CommentResponse {
	return CommentResponse{Comment: cm, Likes: cm.LikeUserIDs()}
}

func toCommentResponses(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, cm := range comments {
		out = append(out, toCommentResponse(cm))
	}
	return out
}

// CreateCommentRequest is the payload for a new comment or reply.
type CreateCommentRequest struct {
	Blog          uint   `json:"blog" binding:"required"`
	Content       string `json:"content" binding:"required"`
	ParentComment *uint  `json:"parentComment"`
}

// Create handles POST /api/comments.
func (h *CommentHandler) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.CreateComment: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: blog and content are required")
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), identity, service.CreateCommentInput{
		BlogID:          req.Blog,
		Content:         req.Content,
		ParentCommentID: req.ParentComment,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, toCommentResponse(*comment))
}

// ListByBlog handles GET /api/comments/blog/:blogId.
func (h *CommentHandler) ListByBlog(c *gin.Context) {
	blogID, ok := parseIDParam(c, "blogId")
	if !ok {
		return
	}

	comments, err := h.commentService.ListByBlog(c.Request.Context(), blogID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, toCommentResponses(comments))
}

// UpdateCommentRequest is the payload for a content rewrite.
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// Update handles PUT /api/comments/id/:id (author or admin).
func (h *CommentHandler) Update(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateComment: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: content is required")
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), identity, id, req.Content)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, toCommentResponse(*comment))
}

// Delete handles DELETE /api/comments/id/:id (author or admin).
func (h *CommentHandler) Delete(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), identity, id); err != nil {
		HandleServiceError(c, err)
		return
	}

	MessageResponse(c, http.StatusOK, "Comment deleted", nil)
}

// Like handles PUT /api/comments/id/:id/like.
func (h *CommentHandler) Like(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	likes, isLiked, err := h.commentService.ToggleLike(c.Request.Context(), identity, id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{"likes": likes, "isLiked": isLiked})
}
