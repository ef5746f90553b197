package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Yashkhope01/Blog/internal/domain"
	"github.com/Yashkhope01/Blog/internal/middleware"
	"github.com/Yashkhope01/Blog/internal/service"
)

// BlogHandler exposes the public reader and the admin mutation endpoints for
// posts.
type BlogHandler struct {
	blogService *service.BlogService
}

// NewBlogHandler creates a BlogHandler.
func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// BlogResponse is a post with its like set flattened to user ids.
type BlogResponse struct {
	domain.Blog
	Likes []uint `json:"likes"`
}

func toBlogResponse(b domain.Blog) BlogResponse {
	return BlogResponse{Blog: b, Likes: b.LikeUserIDs()}
}

func toBlogResponses(blogs []domain.Blog) []BlogResponse {
	out := make([]BlogResponse, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, toBlogResponse(b))
	}
	return out
}

// List handles GET /api/blogs. Query: page, limit, search, category,
// published. published=false reveals drafts for the admin console.
func (h *BlogHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	blogs, pageInfo, err := h.blogService.List(c.Request.Context(), service.BlogListQuery{
		Page:          page,
		Limit:         limit,
		Search:        c.Query("search"),
		Category:      c.Query("category"),
		IncludeDrafts: c.Query("published") == "false",
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	PagedResponse(c, http.StatusOK, toBlogResponses(blogs), pageInfo)
}

// Featured handles GET /api/blogs/featured.
func (h *BlogHandler) Featured(c *gin.Context) {
	blogs, err := h.blogService.Featured(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	CountResponse(c, http.StatusOK, toBlogResponses(blogs), len(blogs))
}

// GetBySlug handles GET /api/blogs/:slug. The fetch itself bumps the view
// counter.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	blog, err := h.blogService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, toBlogResponse(*blog))
}

// BlogFormRequest is the multipart form for create and update. Tags arrive
// comma-separated; the optional image file travels separately under the
// "image" part, while a plain "image" value is treated as a URL.
type BlogFormRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Content     string `form:"content"`
	Slug        string `form:"slug"`
	Category    string `form:"category"`
	Tags        string `form:"tags"`
	Published   *bool  `form:"published"`
	ImageURL    string `form:"image"`
}

// Create handles POST /api/blogs (admin only, multipart).
func (h *BlogHandler) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req BlogFormRequest
	if err := c.ShouldBind(&req); err != nil {
		logrus.WithError(err).Warn("Handler.CreateBlog: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input")
		return
	}

	file, cleanup, err := openImageFile(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanup()

	blog, err := h.blogService.Create(c.Request.Context(), identity, service.CreateBlogInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Slug:        req.Slug,
		Category:    req.Category,
		Tags:        splitTags(req.Tags),
		Published:   req.Published,
		ImageURL:    req.ImageURL,
	}, file)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, toBlogResponse(*blog))
}

// Update handles PUT /api/blogs/id/:id (admin only, multipart).
func (h *BlogHandler) Update(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req BlogFormRequest
	if err := c.ShouldBind(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateBlog: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input")
		return
	}

	file, cleanup, err := openImageFile(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanup()

	// An absent tags field leaves the tags unchanged; a present but empty
	// value clears them, so form presence decides, not the bound string.
	var tags []string
	if _, ok := c.GetPostForm("tags"); ok {
		tags = splitTags(req.Tags)
		if tags == nil {
			tags = []string{}
		}
	}

	blog, err := h.blogService.Update(c.Request.Context(), identity, id, service.UpdateBlogInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Slug:        req.Slug,
		Category:    req.Category,
		Tags:        tags,
		Published:   req.Published,
		ImageURL:    req.ImageURL,
	}, file)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, toBlogResponse(*blog))
}

// Delete handles DELETE /api/blogs/id/:id (admin only).
func (h *BlogHandler) Delete(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), identity, id); err != nil {
		HandleServiceError(c, err)
		return
	}

	MessageResponse(c, http.StatusOK, "Blog and associated comments deleted", nil)
}

// Like handles PUT /api/blogs/id/:id/like.
func (h *BlogHandler) Like(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	likes, isLiked, err := h.blogService.ToggleLike(c.Request.Context(), identity, id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{"likes": likes, "isLiked": isLiked})
}

// openImageFile pulls the optional "image" multipart part into a
// service.ImageFile. The returned cleanup is always safe to defer.
func openImageFile(c *gin.Context) (*service.ImageFile, func(), error) {
	noop := func() {}

	header, err := c.FormFile("image")
	if err != nil {
		// Missing part means no upload; posts fall back to an image URL or
		// the placeholder.
		return nil, noop, nil
	}

	f, err := header.Open()
	if err != nil {
		return nil, noop, err
	}

	return &service.ImageFile{
		Reader:      f,
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}, func() { f.Close() }, nil
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// parseIDParam parses a numeric path parameter, writing the 400 itself when
// the value is not a positive integer.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}
