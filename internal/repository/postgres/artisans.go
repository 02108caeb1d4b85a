// internal/repository/postgres/artisans.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

func (s *Store) ListArtisans(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.Artisan, repository.PageInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, repository.PageInfo{}, err
	}

	query, err := applyFilter(s.db.WithContext(ctx).Model(&models.Artisan{}), f, artisanFilters)
	if err != nil {
		return nil, repository.PageInfo{}, err
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, repository.PageInfo{}, wrapErr("count artisans", err)
	}

	var artisans []models.Artisan
	err = query.
		Order("created_at DESC").
		Offset(p.Offset()).Limit(p.Limit).
		Find(&artisans).Error
	if err != nil {
		return nil, repository.PageInfo{}, wrapErr("list artisans", err)
	}
	return artisans, repository.NewPageInfo(p, total), nil
}

func (s *Store) GetArtisan(ctx context.Context, id string) (*models.Artisan, error) {
	var artisan models.Artisan
	if err := s.db.WithContext(ctx).First(&artisan, "id = ?", id).Error; err != nil {
		return nil, wrapErr("get artisan", err)
	}
	return &artisan, nil
}

func (s *Store) CreateArtisan(ctx context.Context, artisan *models.Artisan) error {
	artisan.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(artisan).Error; err != nil {
		return wrapErr("create artisan", err)
	}
	return nil
}

func (s *Store) UpdateArtisan(ctx context.Context, id string, patch repository.Patch) (*models.Artisan, error) {
	var artisan models.Artisan
	err := s.withTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&artisan, "id = ?", id).Error; err != nil {
			return wrapErr("update artisan", err)
		}
		if err := repository.ApplyPatch(&artisan, patch); err != nil {
			return err
		}
		artisan.UpdatedAt = time.Now()
		if err := tx.Save(&artisan).Error; err != nil {
			return wrapErr("update artisan", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &artisan, nil
}

func (s *Store) DeleteArtisan(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Artisan{}, "id = ?", id)
	if res.Error != nil {
		return wrapErr("delete artisan", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete artisan: %w", repository.ErrNotFound)
	}
	return nil
}
