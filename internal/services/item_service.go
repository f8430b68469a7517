package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lostfound-app/backend/internal/dto"
	"github.com/lostfound-app/backend/internal/models"
	"gorm.io/gorm"
)

var itemDateLayouts = []string{time.RFC3339, "2006-01-02"}

// ItemService owns listing CRUD and the public query surface.
type ItemService struct {
	db            *gorm.DB
	maxImageBytes int
}

func NewItemService(db *gorm.DB, maxImageBytes int) *ItemService {
	return &ItemService{db: db, maxImageBytes: maxImageBytes}
}

// Create persists a listing owned by the authenticated caller. The owner
// comes from the resolved token identity, never from the body.
func (s *ItemService) Create(ownerID uuid.UUID, req *dto.ItemRequest) (*models.Item, error) {
	status, date, err := s.validateFields(req)
	if err != nil {
		return nil, err
	}

	item := models.Item{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Category:     req.Category,
		Status:       status,
		Location:     req.Location,
		Date:         date,
		Image:        req.Image,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		UserID:       ownerID,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return &item, nil
}

// Update replaces every mutable field after the existence and ownership
// checks. The write itself is scoped by id and owner so a concurrent delete
// cannot interleave past the stale read.
func (s *ItemService) Update(id, requesterID uuid.UUID, req *dto.ItemRequest) (*models.Item, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item.UserID != requesterID {
		return nil, ErrNotOwner
	}

	status, date, err := s.validateFields(req)
	if err != nil {
		return nil, err
	}

	result := s.db.Model(&models.Item{}).
		Where("id = ? AND user_id = ?", id, requesterID).
		Updates(map[string]interface{}{
			"title":         strings.TrimSpace(req.Title),
			"description":   req.Description,
			"category":      req.Category,
			"status":        status,
			"location":      req.Location,
			"date":          date,
			"image":         req.Image,
			"contact_name":  req.ContactName,
			"contact_phone": req.ContactPhone,
			"contact_email": req.ContactEmail,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrItemNotFound
	}

	return s.GetByID(id)
}

// Delete removes a listing permanently. Same existence/ownership rules as
// Update; the DELETE is owner-scoped.
func (s *ItemService) Delete(id, requesterID uuid.UUID) error {
	item, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if item.UserID != requesterID {
		return ErrNotOwner
	}

	result := s.db.Where("id = ? AND user_id = ?", id, requesterID).Delete(&models.Item{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *ItemService) GetByID(id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := s.db.Preload("User").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *ItemService) ListAll() ([]models.Item, error) {
	var items []models.Item
	err := s.db.Preload("User").Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *ItemService) ListByStatus(status string) ([]models.Item, error) {
	var items []models.Item
	err := s.db.Preload("User").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// ListByOwner is always scoped to the caller's own resolved identity.
func (s *ItemService) ListByOwner(ownerID uuid.UUID) ([]models.Item, error) {
	var items []models.Item
	err := s.db.Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// Search matches the query case-insensitively as a substring of title or
// description. An empty query is a rejected call, not list-all.
func (s *ItemService) Search(query string) ([]models.Item, error) {
	if strings.TrimSpace(query) == "" {
		return nil, validationErr("Please provide search query")
	}

	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	var items []models.Item
	err := s.db.Preload("User").
		Where("LOWER(title) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\'", pattern, pattern).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// Filter AND-combines the provided criteria; absent criteria are wildcards.
func (s *ItemService) Filter(category, status string) ([]models.Item, error) {
	query := s.db.Preload("User").Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if status != "" {
		query = query.Where("status = ?", strings.ToLower(status))
	}

	var items []models.Item
	err := query.Find(&items).Error
	return items, err
}

func (s *ItemService) validateFields(req *dto.ItemRequest) (status string, date time.Time, err error) {
	if err := dto.Validate(req); err != nil {
		return "", time.Time{}, validationErr(err.Error())
	}

	if !models.ValidCategory(req.Category) {
		return "", time.Time{}, validationErr("Category must be one of: " + strings.Join(models.ItemCategories, ", "))
	}

	status = strings.ToLower(req.Status)
	if !models.ValidStatus(status) {
		return "", time.Time{}, validationErr("Status must be 'lost' or 'found'")
	}

	date, err = parseItemDate(req.Date)
	if err != nil {
		return "", time.Time{}, validationErr("Date must be YYYY-MM-DD or RFC3339")
	}

	if req.Image != nil && len(*req.Image) > s.maxImageBytes {
		return "", time.Time{}, validationErr(fmt.Sprintf("Image must be under %d bytes", s.maxImageBytes))
	}

	return status, date, nil
}

func parseItemDate(s string) (time.Time, error) {
	for _, layout := range itemDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}

// escapeLike neutralizes LIKE wildcards in user input.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
