package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/localmart/community-backend/internal/services"
	"github.com/localmart/community-backend/internal/utils"
)

type ForumHandler struct {
	forumService *services.ForumService
}

func NewForumHandler(forumService *services.ForumService) *ForumHandler {
	return &ForumHandler{forumService: forumService}
}

func (h *ForumHandler) GetCategories(c *gin.Context) {
	categories, err := h.forumService.Categories()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch forum categories", err)
		return
	}

	utils.SendSuccess(c, "Forum categories retrieved successfully", categories)
}

func (h *ForumHandler) GetCategoryPosts(c *gin.Context) {
	id, ok := parseIDParam(c, "category_id")
	if !ok {
		return
	}

	posts, err := h.forumService.PostsByCategory(id)
	if err != nil {
		sendServiceError(c, "Failed to fetch posts", err)
		return
	}

	utils.SendSuccess(c, "Posts retrieved successfully", posts)
}

func (h *ForumHandler) GetPost(c *gin.Context) {
	id, ok := parseIDParam(c, "post_id")
	if !ok {
		return
	}

	post, err := h.forumService.GetPost(id)
	if err != nil {
		sendServiceError(c, "Failed to fetch post", err)
		return
	}

	comments, err := h.forumService.CommentsByPost(id)
	if err != nil {
		sendServiceError(c, "Failed to fetch comments", err)
		return
	}

	utils.SendSuccess(c, "Post retrieved successfully", gin.H{
		"post":     post,
		"comments": comments,
	})
}

func (h *ForumHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, ok := parseIDParam(c, "category_id")
	if !ok {
		return
	}

	var req services.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	post, err := h.forumService.CreatePost(userID, id, req)
	if err != nil {
		sendServiceError(c, "Failed to create post", err)
		return
	}

	utils.SendCreated(c, "Post created successfully", post)
}

func (h *ForumHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, ok := parseIDParam(c, "post_id")
	if !ok {
		return
	}

	var req services.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	comment, err := h.forumService.CreateComment(userID, id, req)
	if err != nil {
		sendServiceError(c, "Failed to post comment", err)
		return
	}

	utils.SendCreated(c, "Comment posted successfully", comment)
}
