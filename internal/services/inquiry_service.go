package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/internal/models"
)

// InquiryService handles inquiries and contact messages
type InquiryService struct {
	inquiries  InquiryStore
	packages   PackageLookup
	notifier   Notifier
	staffEmail string
	logger     *logrus.Logger
	now        func() time.Time
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(
	inquiries InquiryStore,
	packages PackageLookup,
	notifier Notifier,
	staffEmail string,
	logger *logrus.Logger,
) *InquiryService {
	return &InquiryService{
		inquiries:  inquiries,
		packages:   packages,
		notifier:   notifier,
		staffEmail: staffEmail,
		logger:     logger,
		now:        time.Now,
	}
}

// Create validates and stores an inquiry. A package reference, when given,
// must resolve. Customer and staff are notified in the background.
func (s *InquiryService) Create(ctx context.Context, req *models.CreateInquiryRequest, from Submitter) (*models.Inquiry, error) {
	if err := validateInquiryRequest(req); err != nil {
		return nil, err
	}

	var pkg *models.Package
	packageID := optionalString(req.PackageID)
	if packageID != nil {
		p, err := s.packages.GetByID(ctx, *packageID)
		if err != nil {
			if errors.Is(storeError(err), ErrNotFound) {
				return nil, ErrReferenceNotFound
			}
			return nil, fmt.Errorf("failed to resolve package: %w", err)
		}
		pkg = p
	}

	now := s.now()
	inquiry := &models.Inquiry{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     normalizeEmail(req.Email),
		Phone:     optionalString(req.Phone),
		PackageID: packageID,
		Message:   strings.TrimSpace(req.Message),
		Status:    models.InquiryStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"inquiry_id": inquiry.ID,
		"contact":    inquiry.IsContactMessage(),
	}).Info("Inquiry created")

	s.notifier.Dispatch(EventInquiryCreated, inquiryNotifications(inquiry, pkg, s.staffEmail, from)...)

	return inquiry, nil
}

// CreateContact stores a contact message: an inquiry without package reference
func (s *InquiryService) CreateContact(ctx context.Context, req *models.CreateInquiryRequest, from Submitter) (*models.Inquiry, error) {
	contact := *req
	contact.PackageID = nil
	return s.Create(ctx, &contact, from)
}

// GetByID retrieves an inquiry
func (s *InquiryService) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	i, err := s.inquiries.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return i, nil
}

// List returns one page of inquiries, newest first
func (s *InquiryService) List(ctx context.Context, opts InquiryListOptions) (*models.Page[models.Inquiry], error) {
	return Paginate[models.Inquiry](ctx, s.inquiries, opts.Filter(), newestFirst, opts.PageRequest())
}

// UpdateStatus sets any status of the inquiry vocabulary
func (s *InquiryService) UpdateStatus(ctx context.Context, id, status string) (*models.Inquiry, error) {
	parsed, err := models.ParseStatus(models.KindInquiry, status)
	if err != nil {
		return nil, statusError(err)
	}

	i, err := s.inquiries.UpdateStatus(ctx, id, models.InquiryStatus(parsed))
	if err != nil {
		return nil, storeError(err)
	}
	return i, nil
}
