// internal/repository/fire/records.go
package fire

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

func (s *Store) ListArtisans(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.Artisan, repository.PageInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, repository.PageInfo{}, err
	}
	q, err := applyQuery(s.client.Collection(colArtisans).Query, f, artisanFields)
	if err != nil {
		return nil, repository.PageInfo{}, err
	}
	docs, total, err := s.page(ctx, q, p)
	if err != nil {
		return nil, repository.PageInfo{}, wrapErr("list artisans", err)
	}

	artisans := make([]models.Artisan, 0, len(docs))
	for _, doc := range docs {
		var artisan models.Artisan
		if err := doc.DataTo(&artisan); err != nil {
			return nil, repository.PageInfo{}, wrapErr("decode artisan", err)
		}
		artisan.ID = doc.Ref.ID
		artisans = append(artisans, artisan)
	}
	return artisans, repository.NewPageInfo(p, total), nil
}

func (s *Store) GetArtisan(ctx context.Context, id string) (*models.Artisan, error) {
	doc, err := s.client.Collection(colArtisans).Doc(id).Get(ctx)
	if err != nil {
		return nil, wrapErr("get artisan", err)
	}
	var artisan models.Artisan
	if err := doc.DataTo(&artisan); err != nil {
		return nil, wrapErr("decode artisan", err)
	}
	artisan.ID = doc.Ref.ID
	return &artisan, nil
}

func (s *Store) CreateArtisan(ctx context.Context, artisan *models.Artisan) error {
	now := time.Now()
	artisan.ID = uuid.NewString()
	artisan.CreatedAt = now
	artisan.UpdatedAt = now
	if _, err := s.client.Collection(colArtisans).Doc(artisan.ID).Set(ctx, artisan); err != nil {
		return wrapErr("create artisan", err)
	}
	return nil
}

func (s *Store) UpdateArtisan(ctx context.Context, id string, patch repository.Patch) (*models.Artisan, error) {
	ref := s.client.Collection(colArtisans).Doc(id)
	var artisan models.Artisan

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		if err := doc.DataTo(&artisan); err != nil {
			return err
		}
		artisan.ID = id
		if err := repository.ApplyPatch(&artisan, patch); err != nil {
			return err
		}
		artisan.UpdatedAt = time.Now()
		return tx.Set(ref, &artisan)
	})
	if err != nil {
		if isTaxonomyErr(err) {
			return nil, err
		}
		return nil, wrapErr("update artisan", err)
	}
	return &artisan, nil
}

func (s *Store) DeleteArtisan(ctx context.Context, id string) error {
	ref := s.client.Collection(colArtisans).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		return wrapErr("delete artisan", err)
	}
	if _, err := ref.Delete(ctx); err != nil {
		return wrapErr("delete artisan", err)
	}
	return nil
}

func (s *Store) ListUsers(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.User, repository.PageInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, repository.PageInfo{}, err
	}
	q, err := applyQuery(s.client.Collection(colUsers).Query, f, userFields)
	if err != nil {
		return nil, repository.PageInfo{}, err
	}
	docs, total, err := s.page(ctx, q, p)
	if err != nil {
		return nil, repository.PageInfo{}, wrapErr("list users", err)
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		var user models.User
		if err := doc.DataTo(&user); err != nil {
			return nil, repository.PageInfo{}, wrapErr("decode user", err)
		}
		user.ID = doc.Ref.ID
		users = append(users, user)
	}
	return users, repository.NewPageInfo(p, total), nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	doc, err := s.client.Collection(colUsers).Doc(id).Get(ctx)
	if err != nil {
		return nil, wrapErr("get user", err)
	}
	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, wrapErr("decode user", err)
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	if _, err := s.client.Collection(colUsers).Doc(user.ID).Set(ctx, user); err != nil {
		return wrapErr("create user", err)
	}
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, patch repository.Patch) (*models.User, error) {
	ref := s.client.Collection(colUsers).Doc(id)
	var user models.User

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		if err := doc.DataTo(&user); err != nil {
			return err
		}
		user.ID = id
		if err := repository.ApplyPatch(&user, patch); err != nil {
			return err
		}
		user.UpdatedAt = time.Now()
		return tx.Set(ref, &user)
	})
	if err != nil {
		if isTaxonomyErr(err) {
			return nil, err
		}
		return nil, wrapErr("update user", err)
	}
	return &user, nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	ref := s.client.Collection(colUsers).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		return wrapErr("delete user", err)
	}
	if _, err := ref.Delete(ctx); err != nil {
		return wrapErr("delete user", err)
	}
	return nil
}

func (s *Store) ListInquiries(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.Inquiry, repository.PageInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, repository.PageInfo{}, err
	}
	q, err := applyQuery(s.client.Collection(colInquiries).Query, f, inquiryFields)
	if err != nil {
		return nil, repository.PageInfo{}, err
	}
	docs, total, err := s.page(ctx, q, p)
	if err != nil {
		return nil, repository.PageInfo{}, wrapErr("list inquiries", err)
	}

	inquiries := make([]models.Inquiry, 0, len(docs))
	for _, doc := range docs {
		var inquiry models.Inquiry
		if err := doc.DataTo(&inquiry); err != nil {
			return nil, repository.PageInfo{}, wrapErr("decode inquiry", err)
		}
		inquiry.ID = doc.Ref.ID
		inquiries = append(inquiries, inquiry)
	}
	return inquiries, repository.NewPageInfo(p, total), nil
}

func (s *Store) GetInquiry(ctx context.Context, id string) (*models.Inquiry, error) {
	doc, err := s.client.Collection(colInquiries).Doc(id).Get(ctx)
	if err != nil {
		return nil, wrapErr("get inquiry", err)
	}
	var inquiry models.Inquiry
	if err := doc.DataTo(&inquiry); err != nil {
		return nil, wrapErr("decode inquiry", err)
	}
	inquiry.ID = doc.Ref.ID
	return &inquiry, nil
}

func (s *Store) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	now := time.Now()
	inquiry.ID = uuid.NewString()
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now
	if inquiry.Status == "" {
		inquiry.Status = models.InquiryStatusNew
	}
	if _, err := s.client.Collection(colInquiries).Doc(inquiry.ID).Set(ctx, inquiry); err != nil {
		return wrapErr("create inquiry", err)
	}
	return nil
}

func (s *Store) UpdateInquiry(ctx context.Context, id string, patch repository.Patch) (*models.Inquiry, error) {
	ref := s.client.Collection(colInquiries).Doc(id)
	var inquiry models.Inquiry

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		if err := doc.DataTo(&inquiry); err != nil {
			return err
		}
		inquiry.ID = id
		if err := repository.ApplyPatch(&inquiry, patch); err != nil {
			return err
		}
		inquiry.UpdatedAt = time.Now()
		return tx.Set(ref, &inquiry)
	})
	if err != nil {
		if isTaxonomyErr(err) {
			return nil, err
		}
		return nil, wrapErr("update inquiry", err)
	}
	return &inquiry, nil
}

func (s *Store) DeleteInquiry(ctx context.Context, id string) error {
	ref := s.client.Collection(colInquiries).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		return wrapErr("delete inquiry", err)
	}
	if _, err := ref.Delete(ctx); err != nil {
		return wrapErr("delete inquiry", err)
	}
	return nil
}

func (s *Store) SubscribeNewsletter(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	docs, err := s.client.Collection(colSubscribers).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, wrapErr("lookup subscriber", err)
	}

	if len(docs) > 0 {
		var sub models.NewsletterSubscriber
		if err := docs[0].DataTo(&sub); err != nil {
			return nil, wrapErr("decode subscriber", err)
		}
		sub.ID = docs[0].Ref.ID
		if sub.Active {
			return &sub, nil
		}
		sub.Active = true
		sub.SubscribedAt = time.Now()
		sub.UnsubscribedAt = nil
		sub.UpdatedAt = sub.SubscribedAt
		if _, err := docs[0].Ref.Set(ctx, &sub); err != nil {
			return nil, wrapErr("reactivate subscriber", err)
		}
		return &sub, nil
	}

	now := time.Now()
	sub := models.NewsletterSubscriber{
		BaseModel:    models.BaseModel{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		Email:        email,
		Active:       true,
		SubscribedAt: now,
	}
	if _, err := s.client.Collection(colSubscribers).Doc(sub.ID).Set(ctx, &sub); err != nil {
		return nil, wrapErr("create subscriber", err)
	}
	return &sub, nil
}

func (s *Store) UnsubscribeNewsletter(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	docs, err := s.client.Collection(colSubscribers).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, wrapErr("unsubscribe", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("unsubscribe: %w", repository.ErrNotFound)
	}

	var sub models.NewsletterSubscriber
	if err := docs[0].DataTo(&sub); err != nil {
		return nil, wrapErr("decode subscriber", err)
	}
	sub.ID = docs[0].Ref.ID
	if !sub.Active {
		return &sub, nil
	}
	now := time.Now()
	sub.Active = false
	sub.UnsubscribedAt = &now
	sub.UpdatedAt = now
	if _, err := docs[0].Ref.Set(ctx, &sub); err != nil {
		return nil, wrapErr("unsubscribe", err)
	}
	return &sub, nil
}

func (s *Store) ListNewsletterSubscribers(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.NewsletterSubscriber, repository.PageInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, repository.PageInfo{}, err
	}
	q, err := applyQuery(s.client.Collection(colSubscribers).Query, f, subscriberFields)
	if err != nil {
		return nil, repository.PageInfo{}, err
	}
	docs, total, err := s.page(ctx, q, p)
	if err != nil {
		return nil, repository.PageInfo{}, wrapErr("list subscribers", err)
	}

	subs := make([]models.NewsletterSubscriber, 0, len(docs))
	for _, doc := range docs {
		var sub models.NewsletterSubscriber
		if err := doc.DataTo(&sub); err != nil {
			return nil, repository.PageInfo{}, wrapErr("decode subscriber", err)
		}
		sub.ID = doc.Ref.ID
		subs = append(subs, sub)
	}
	return subs, repository.NewPageInfo(p, total), nil
}
