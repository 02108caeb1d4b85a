// internal/services/artisan_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
	"github.com/projectgichatbot-max/gitag-backend/internal/utils"
)

type ArtisanService struct {
	provider *repository.Provider
	logger   *logrus.Logger
}

type CreateArtisanRequest struct {
	Name            string                 `json:"name" validate:"required,min=2,max=255"`
	Village         string                 `json:"village,omitempty"`
	District        string                 `json:"district,omitempty"`
	Region          string                 `json:"region" validate:"required"`
	Specialization  string                 `json:"specialization" validate:"required"`
	ExperienceYears int                    `json:"experienceYears" validate:"min=0"`
	Bio             string                 `json:"bio,omitempty"`
	Image           string                 `json:"image,omitempty"`
	Products        []string               `json:"products,omitempty"`
	Skills          []string               `json:"skills,omitempty"`
	Achievements    []string               `json:"achievements,omitempty"`
	Contact         models.ContactInfo     `json:"contact"`
	Workshops       []models.WorkshopOffer `json:"workshops,omitempty"`
	Impact          models.SocialImpact    `json:"impact"`
	Testimonials    []models.Testimonial   `json:"testimonials,omitempty"`
	Gallery         []string               `json:"gallery,omitempty"`
	Location        *models.GeoLocation    `json:"location,omitempty"`
	Keywords        []string               `json:"keywords,omitempty"`
}

func NewArtisanService(provider *repository.Provider, logger *logrus.Logger) *ArtisanService {
	return &ArtisanService{provider: provider, logger: logger}
}

func (s *ArtisanService) List(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.Artisan, repository.PageInfo, error) {
	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, repository.PageInfo{}, err
	}
	return store.ListArtisans(ctx, f, p)
}

func (s *ArtisanService) Get(ctx context.Context, id string) (*models.Artisan, error) {
	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, err
	}
	return store.GetArtisan(ctx, id)
}

func (s *ArtisanService) Create(ctx context.Context, req *CreateArtisanRequest) (*models.Artisan, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", repository.ErrValidation, utils.ValidationSummary(err))
	}

	artisan := &models.Artisan{
		Name:            req.Name,
		Village:         req.Village,
		District:        req.District,
		Region:          req.Region,
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
		Bio:             req.Bio,
		Image:           req.Image,
		Products:        req.Products,
		Skills:          req.Skills,
		Achievements:    req.Achievements,
		Contact:         req.Contact,
		Workshops:       req.Workshops,
		Impact:          req.Impact,
		Testimonials:    req.Testimonials,
		Gallery:         req.Gallery,
		Location:        req.Location,
		Keywords:        req.Keywords,
	}

	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, err
	}
	if err := store.CreateArtisan(ctx, artisan); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"artisan_id": artisan.ID, "name": artisan.Name}).Info("artisan created")
	return artisan, nil
}

func (s *ArtisanService) Update(ctx context.Context, id string, patch repository.Patch) (*models.Artisan, error) {
	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, err
	}
	return store.UpdateArtisan(ctx, id, patch)
}

func (s *ArtisanService) Delete(ctx context.Context, id string) error {
	store, err := s.provider.Store(ctx)
	if err != nil {
		return err
	}
	if err := store.DeleteArtisan(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("artisan_id", id).Info("artisan deleted")
	return nil
}
