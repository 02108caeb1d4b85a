// internal/services/inquiry_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
	"github.com/projectgichatbot-max/gitag-backend/internal/utils"
)

type InquiryService struct {
	provider *repository.Provider
	logger   *logrus.Logger
}

type CreateInquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,min=10"`
}

func NewInquiryService(provider *repository.Provider, logger *logrus.Logger) *InquiryService {
	return &InquiryService{provider: provider, logger: logger}
}

func (s *InquiryService) Create(ctx context.Context, req *CreateInquiryRequest) (*models.Inquiry, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", repository.ErrValidation, utils.ValidationSummary(err))
	}

	inquiry := &models.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.InquiryStatusNew,
	}

	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, err
	}
	if err := store.CreateInquiry(ctx, inquiry); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"inquiry_id": inquiry.ID, "subject": inquiry.Subject}).Info("inquiry received")
	return inquiry, nil
}

func (s *InquiryService) List(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.Inquiry, repository.PageInfo, error) {
	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, repository.PageInfo{}, err
	}
	return store.ListInquiries(ctx, f, p)
}

func (s *InquiryService) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) (*models.Inquiry, error) {
	switch status {
	case models.InquiryStatusNew, models.InquiryStatusRead, models.InquiryStatusResponded:
	default:
		return nil, fmt.Errorf("%w: invalid inquiry status %q", repository.ErrValidation, status)
	}

	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, err
	}
	return store.UpdateInquiry(ctx, id, repository.Patch{"status": string(status)})
}
