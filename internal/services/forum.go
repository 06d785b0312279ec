package services

import (
	"errors"

	"github.com/localmart/community-backend/internal/models"
	"github.com/localmart/community-backend/internal/utils"
	"gorm.io/gorm"
)

// ForumService covers the fixed three-level hierarchy:
// category -> post -> comment. Comments cannot nest further.
type ForumService struct {
	db *gorm.DB
}

func NewForumService(db *gorm.DB) *ForumService {
	return &ForumService{db: db}
}

type CreatePostRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

func (s *ForumService) Categories() ([]models.ForumCategory, error) {
	var categories []models.ForumCategory
	err := s.db.Find(&categories).Error
	return categories, err
}

func (s *ForumService) GetCategory(id uint) (*models.ForumCategory, error) {
	var category models.ForumCategory
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// PostsByCategory lists a category's posts, newest first.
func (s *ForumService) PostsByCategory(categoryID uint) ([]models.ForumPost, error) {
	if _, err := s.GetCategory(categoryID); err != nil {
		return nil, err
	}

	var posts []models.ForumPost
	err := s.db.Preload("Author").
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (s *ForumService) GetPost(id uint) (*models.ForumPost, error) {
	var post models.ForumPost
	if err := s.db.Preload("Author").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// CommentsByPost lists a post's comments oldest first, so a discussion reads
// chronologically even though post listings show newest first.
func (s *ForumService) CommentsByPost(postID uint) ([]models.ForumComment, error) {
	if _, err := s.GetPost(postID); err != nil {
		return nil, err
	}

	var comments []models.ForumComment
	err := s.db.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (s *ForumService) CreatePost(userID, categoryID uint, req CreatePostRequest) (*models.ForumPost, error) {
	title := utils.SanitizeString(req.Title)
	if title == "" || utils.SanitizeString(req.Body) == "" {
		return nil, validationError("title and body are required")
	}

	if _, err := s.GetCategory(categoryID); err != nil {
		return nil, err
	}

	post := models.ForumPost{
		Title:      title,
		Body:       req.Body,
		UserID:     userID,
		CategoryID: categoryID,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *ForumService) CreateComment(userID, postID uint, req CreateCommentRequest) (*models.ForumComment, error) {
	if utils.SanitizeString(req.Body) == "" {
		return nil, validationError("body is required")
	}

	if _, err := s.GetPost(postID); err != nil {
		return nil, err
	}

	comment := models.ForumComment{
		Body:   req.Body,
		UserID: userID,
		PostID: postID,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}
