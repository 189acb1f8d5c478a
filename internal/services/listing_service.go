package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/myflat/internal/dto"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/models"
	"gorm.io/gorm"
)

var ErrListingNotFound = errors.New("listing not found")

type ListingService struct {
	db *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{db: db}
}

// SearchFilter narrows the available listings. Zero-valued fields do not filter.
type SearchFilter struct {
	Query    string
	FlatType models.FlatType
	PostType models.PostType
}

// NewSearchFilter validates the enum filters of a search request.
func NewSearchFilter(q *dto.SearchQuery) (SearchFilter, error) {
	f := SearchFilter{Query: q.Q}
	if q.Type != "" {
		ft, err := models.ParseFlatType(q.Type)
		if err != nil {
			return SearchFilter{}, err
		}
		f.FlatType = ft
	}
	if q.PostType != "" {
		pt, err := models.ParsePostType(q.PostType)
		if err != nil {
			return SearchFilter{}, err
		}
		f.PostType = pt
	}
	return f, nil
}

// Create inserts a new listing. New listings are always available.
func (s *ListingService) Create(ctx context.Context, listing *models.Listing) error {
	listing.ID = 0
	listing.IsAvailable = true
	if err := s.db.WithContext(ctx).Create(listing).Error; err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

func (s *ListingService) List(ctx context.Context, avail models.Availability) ([]models.Listing, error) {
	var listings []models.Listing
	err := s.db.WithContext(ctx).
		Scopes(ForAvailability(avail), NewestFirst).
		Preload("Owner").
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

// Feed returns the public listings, newest first.
func (s *ListingService) Feed(ctx context.Context) ([]models.Listing, error) {
	return s.List(ctx, models.AvailableOnly)
}

// All returns every listing regardless of availability.
func (s *ListingService) All(ctx context.Context) ([]models.Listing, error) {
	return s.List(ctx, models.AnyAvailability)
}

func (s *ListingService) Search(ctx context.Context, f SearchFilter) ([]models.Listing, error) {
	db := s.db.WithContext(ctx)
	q := db.Scopes(ForAvailability(models.AvailableOnly), NewestFirst)

	if f.Query != "" {
		pattern := "%" + f.Query + "%"
		q = q.Where(db.Where("title LIKE ?", pattern).
			Or("location LIKE ?", pattern).
			Or("description LIKE ?", pattern))
	}
	if f.FlatType != "" {
		q = q.Where("flat_type = ?", f.FlatType)
	}
	if f.PostType != "" {
		q = q.Where("post_type = ?", f.PostType)
	}

	var listings []models.Listing
	if err := q.Preload("Owner").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to search listings: %w", err)
	}
	return listings, nil
}

// ByOwner returns the listings posted by one user.
func (s *ListingService) ByOwner(ctx context.Context, userID uint, avail models.Availability) ([]models.Listing, error) {
	var listings []models.Listing
	err := s.db.WithContext(ctx).
		Scopes(ForOwner(userID), ForAvailability(avail), NewestFirst).
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list listings by owner: %w", err)
	}
	return listings, nil
}

func (s *ListingService) Get(ctx context.Context, id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := s.db.WithContext(ctx).Preload("Owner").First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}
	return &listing, nil
}

func (s *ListingService) SetAvailability(ctx context.Context, id uint, available bool) (*models.Listing, error) {
	listing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(listing).Update("is_available", available).Error; err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}
	listing.IsAvailable = available
	return listing, nil
}
