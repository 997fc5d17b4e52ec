package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/yeremiapane/cafe-finder/models"
	"gorm.io/gorm"
)

// Sort keys accepted by ListCafes. Anything other than SortByName sorts by
// average rating.
const (
	SortByName   = "name"
	SortByRating = "rating"
)

type VoteDirection string

const (
	VoteAgree    VoteDirection = "agree"
	VoteDisagree VoteDirection = "disagree"
)

// CafeQuery selects the cafes shown on the homepage.
type CafeQuery struct {
	City   string
	Search string
	Sort   string
}

// CafeFields carries every editable attribute of a cafe. Updates overwrite
// all of them.
type CafeFields struct {
	Name           string
	City           string
	CoffeeRating   float64
	WifiRating     float64
	AmbianceRating float64
	HasPower       bool
	MapURL         string
}

// CatalogService is the persistence and query layer over cafes and reviews.
type CatalogService struct {
	db       *gorm.DB
	validate *validator.Validate

	// Now stamps created_at and updated_at.
	Now func() time.Time
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{
		db:       db,
		validate: newValidator(),
		Now:      time.Now,
	}
}

// ListCafes returns the cafes of one city, optionally filtered by a
// case-insensitive name fragment.
func (s *CatalogService) ListCafes(ctx context.Context, q CafeQuery) ([]models.Cafe, error) {
	cafes := []models.Cafe{}
	if !models.IsCity(q.City) {
		return cafes, nil
	}
	if err := s.db.WithContext(ctx).
		Where("city = ?", q.City).
		Order("name ASC").
		Find(&cafes).Error; err != nil {
		return nil, fmt.Errorf("list cafes: %w", err)
	}

	if search := strings.ToLower(q.Search); search != "" {
		filtered := cafes[:0]
		for _, cafe := range cafes {
			if strings.Contains(strings.ToLower(cafe.Name), search) {
				filtered = append(filtered, cafe)
			}
		}
		cafes = filtered
	}

	if q.Sort != "" && q.Sort != SortByName {
		sort.SliceStable(cafes, func(i, j int) bool {
			return cafes[i].AverageRating() > cafes[j].AverageRating()
		})
	}

	return cafes, nil
}

// ListAllCafes returns every cafe ordered by city, then name.
func (s *CatalogService) ListAllCafes(ctx context.Context) ([]models.Cafe, error) {
	var cafes []models.Cafe
	if err := s.db.WithContext(ctx).Order("city ASC, name ASC").Find(&cafes).Error; err != nil {
		return nil, fmt.Errorf("list all cafes: %w", err)
	}
	return cafes, nil
}

func (s *CatalogService) GetCafe(ctx context.Context, id uint) (*models.Cafe, error) {
	var cafe models.Cafe
	if err := s.db.WithContext(ctx).First(&cafe, id).Error; err != nil {
		return nil, notFound(err, "cafe", id)
	}
	return &cafe, nil
}

func (s *CatalogService) CreateCafe(ctx context.Context, fields CafeFields) (*models.Cafe, error) {
	cafe := models.Cafe{}
	applyFields(&cafe, fields)
	if err := validateStruct(s.validate, cafe); err != nil {
		return nil, err
	}

	now := s.Now()
	cafe.CreatedAt = now
	cafe.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(&cafe).Error; err != nil {
		return nil, fmt.Errorf("create cafe: %w", err)
	}
	return &cafe, nil
}

// UpdateCafe overwrites every field of an existing cafe and refreshes
// updated_at.
func (s *CatalogService) UpdateCafe(ctx context.Context, id uint, fields CafeFields) (*models.Cafe, error) {
	cafe, err := s.GetCafe(ctx, id)
	if err != nil {
		return nil, err
	}

	applyFields(cafe, fields)
	if err := validateStruct(s.validate, *cafe); err != nil {
		return nil, err
	}
	cafe.UpdatedAt = s.Now()

	// Updates never inserts, so a cafe deleted meanwhile stays deleted.
	res := s.db.WithContext(ctx).Model(cafe).Select("*").Updates(cafe)
	if res.Error != nil {
		return nil, fmt.Errorf("update cafe %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("cafe %d: %w", id, ErrNotFound)
	}
	return cafe, nil
}

// DeleteCafe removes a cafe together with all of its reviews and returns the
// removed cafe.
func (s *CatalogService) DeleteCafe(ctx context.Context, id uint) (*models.Cafe, error) {
	cafe, err := s.GetCafe(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cafe_id = ?", cafe.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Cafe{}, cafe.ID).Error
	})
	if err != nil {
		return nil, fmt.Errorf("delete cafe %d: %w", id, err)
	}
	return cafe, nil
}

// ListReviews returns the reviews of a cafe, newest first.
func (s *CatalogService) ListReviews(ctx context.Context, cafeID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).
		Where("cafe_id = ?", cafeID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews of cafe %d: %w", cafeID, err)
	}
	return reviews, nil
}

func (s *CatalogService) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, notFound(err, "review", id)
	}
	return &review, nil
}

// CreateReview stores a visitor review. Blank text is rejected; a blank email
// is stored as NULL.
func (s *CatalogService) CreateReview(ctx context.Context, cafeID uint, text, email string) (*models.Review, error) {
	if _, err := s.GetCafe(ctx, cafeID); err != nil {
		return nil, err
	}

	review := models.Review{
		CafeID: cafeID,
		Text:   strings.TrimSpace(text),
	}
	if email = strings.TrimSpace(email); email != "" {
		review.Email = &email
	}
	if err := validateStruct(s.validate, review); err != nil {
		return nil, err
	}
	review.CreatedAt = s.Now()

	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return &review, nil
}

// VoteReview adds exactly one agree or disagree vote. The increment is a
// single UPDATE so concurrent votes are never lost.
func (s *CatalogService) VoteReview(ctx context.Context, id uint, direction VoteDirection) (*models.Review, error) {
	var column string
	switch direction {
	case VoteAgree:
		column = "agree_count"
	case VoteDisagree:
		column = "disagree_count"
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidVote, direction)
	}

	res := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if res.Error != nil {
		return nil, fmt.Errorf("vote on review %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("review %d: %w", id, ErrNotFound)
	}

	return s.GetReview(ctx, id)
}

// DeleteAll empties the catalog, reviews first.
func (s *CatalogService) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("delete reviews: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Cafe{}).Error; err != nil {
			return fmt.Errorf("delete cafes: %w", err)
		}
		return nil
	})
}

func applyFields(cafe *models.Cafe, f CafeFields) {
	cafe.Name = strings.TrimSpace(f.Name)
	cafe.City = strings.TrimSpace(f.City)
	cafe.CoffeeRating = f.CoffeeRating
	cafe.WifiRating = f.WifiRating
	cafe.AmbianceRating = f.AmbianceRating
	cafe.HasPower = f.HasPower
	cafe.MapURL = strings.TrimSpace(f.MapURL)
}

func notFound(err error, kind string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	return fmt.Errorf("find %s %d: %w", kind, id, err)
}
