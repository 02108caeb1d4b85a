// internal/repository/postgres/records.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

func (s *Store) ListUsers(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.User, repository.PageInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, repository.PageInfo{}, err
	}
	query, err := applyFilter(s.db.WithContext(ctx).Model(&models.User{}), f, userFilters)
	if err != nil {
		return nil, repository.PageInfo{}, err
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, repository.PageInfo{}, wrapErr("count users", err)
	}
	var users []models.User
	if err := query.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit).Find(&users).Error; err != nil {
		return nil, repository.PageInfo{}, wrapErr("list users", err)
	}
	return users, repository.NewPageInfo(p, total), nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, wrapErr("get user", err)
	}
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return wrapErr("create user", err)
	}
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, patch repository.Patch) (*models.User, error) {
	var user models.User
	err := s.withTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return wrapErr("update user", err)
		}
		if err := repository.ApplyPatch(&user, patch); err != nil {
			return err
		}
		user.UpdatedAt = time.Now()
		if err := tx.Save(&user).Error; err != nil {
			return wrapErr("update user", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return wrapErr("delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete user: %w", repository.ErrNotFound)
	}
	return nil
}

func (s *Store) ListInquiries(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.Inquiry, repository.PageInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, repository.PageInfo{}, err
	}
	query, err := applyFilter(s.db.WithContext(ctx).Model(&models.Inquiry{}), f, inquiryFilters)
	if err != nil {
		return nil, repository.PageInfo{}, err
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, repository.PageInfo{}, wrapErr("count inquiries", err)
	}
	var inquiries []models.Inquiry
	if err := query.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit).Find(&inquiries).Error; err != nil {
		return nil, repository.PageInfo{}, wrapErr("list inquiries", err)
	}
	return inquiries, repository.NewPageInfo(p, total), nil
}

func (s *Store) GetInquiry(ctx context.Context, id string) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := s.db.WithContext(ctx).First(&inquiry, "id = ?", id).Error; err != nil {
		return nil, wrapErr("get inquiry", err)
	}
	return &inquiry, nil
}

func (s *Store) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	inquiry.ID = uuid.NewString()
	if inquiry.Status == "" {
		inquiry.Status = models.InquiryStatusNew
	}
	if err := s.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return wrapErr("create inquiry", err)
	}
	return nil
}

func (s *Store) UpdateInquiry(ctx context.Context, id string, patch repository.Patch) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := s.withTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&inquiry, "id = ?", id).Error; err != nil {
			return wrapErr("update inquiry", err)
		}
		if err := repository.ApplyPatch(&inquiry, patch); err != nil {
			return err
		}
		inquiry.UpdatedAt = time.Now()
		if err := tx.Save(&inquiry).Error; err != nil {
			return wrapErr("update inquiry", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (s *Store) DeleteInquiry(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Inquiry{}, "id = ?", id)
	if res.Error != nil {
		return wrapErr("delete inquiry", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete inquiry: %w", repository.ErrNotFound)
	}
	return nil
}

func (s *Store) SubscribeNewsletter(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var sub models.NewsletterSubscriber
	err := s.db.WithContext(ctx).First(&sub, "email = ?", email).Error
	switch {
	case err == nil:
		if sub.Active {
			// Already subscribed: no-op, return the existing record.
			return &sub, nil
		}
		sub.Active = true
		sub.SubscribedAt = time.Now()
		sub.UnsubscribedAt = nil
		if err := s.db.WithContext(ctx).Save(&sub).Error; err != nil {
			return nil, wrapErr("reactivate subscriber", err)
		}
		return &sub, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub = models.NewsletterSubscriber{
			BaseModel:    models.BaseModel{ID: uuid.NewString()},
			Email:        email,
			Active:       true,
			SubscribedAt: time.Now(),
		}
		if err := s.db.WithContext(ctx).Create(&sub).Error; err != nil {
			// A concurrent subscribe can win the unique-index race; reread
			// and serve the existing record.
			if isUniqueViolation(err) {
				var existing models.NewsletterSubscriber
				if rerr := s.db.WithContext(ctx).First(&existing, "email = ?", email).Error; rerr == nil {
					return &existing, nil
				}
				return nil, fmt.Errorf("subscribe: %w", repository.ErrDuplicateEmail)
			}
			return nil, wrapErr("create subscriber", err)
		}
		return &sub, nil
	default:
		return nil, wrapErr("lookup subscriber", err)
	}
}

func (s *Store) UnsubscribeNewsletter(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var sub models.NewsletterSubscriber
	if err := s.db.WithContext(ctx).First(&sub, "email = ?", email).Error; err != nil {
		return nil, wrapErr("unsubscribe", err)
	}
	if !sub.Active {
		return &sub, nil
	}
	now := time.Now()
	sub.Active = false
	sub.UnsubscribedAt = &now
	if err := s.db.WithContext(ctx).Save(&sub).Error; err != nil {
		return nil, wrapErr("unsubscribe", err)
	}
	return &sub, nil
}

func (s *Store) ListNewsletterSubscribers(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.NewsletterSubscriber, repository.PageInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, repository.PageInfo{}, err
	}
	query, err := applyFilter(s.db.WithContext(ctx).Model(&models.NewsletterSubscriber{}), f, subscriberFilters)
	if err != nil {
		return nil, repository.PageInfo{}, err
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, repository.PageInfo{}, wrapErr("count subscribers", err)
	}
	var subs []models.NewsletterSubscriber
	if err := query.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit).Find(&subs).Error; err != nil {
		return nil, repository.PageInfo{}, wrapErr("list subscribers", err)
	}
	return subs, repository.NewPageInfo(p, total), nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// pgx surfaces the SQLSTATE in the error text
	return err != nil && strings.Contains(err.Error(), "23505")
}
