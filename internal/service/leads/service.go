package leads

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	leadRepo "github.com/m04kA/SMC-SiteOpsService/internal/infra/storage/lead"
	"github.com/m04kA/SMC-SiteOpsService/internal/service/leads/models"
)

// Известные источники заявок
const (
	SourceForm    = "form"
	SourceChatbot = "chatbot"
	SourceLanding = "landing"
)

// Service сервис для работы с заявками
type Service struct {
	repo     LeadRepository
	notifier Notifier
	logger   Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(repo LeadRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Create создает новую заявку и уведомляет владельца бизнеса
func (s *Service) Create(ctx context.Context, req *models.CreateLeadRequest) (*models.LeadResponse, error) {
	s.logger.Info("CreateLead: source=%s, email=%s", req.Source, req.Email)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateLead: validation failed: %v", err)
		return nil, err
	}

	lead := &domain.Lead{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		ProjectType: req.ProjectType,
		Message:     req.Message,
		Source:      req.Source,
		Status:      domain.LeadStatusNew,
	}

	created, err := s.repo.Create(ctx, lead)
	if err != nil {
		s.logger.Error("CreateLead: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.notifier.LeadCaptured(ctx, created)

	s.logger.Info("CreateLead: successfully created lead id=%s", created.ID)
	return models.FromDomainLead(created), nil
}

// List возвращает все заявки, новые первыми
func (s *Service) List(ctx context.Context) (*models.LeadListResponse, error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ListLeads: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListLeads: fetched %d leads", len(leads))
	return models.FromDomainLeadList(leads), nil
}

// UpdateStatus обновляет статус заявки
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) error {
	s.logger.Info("UpdateLeadStatus: updating lead id=%s to status=%s", id, status)

	newStatus, ok := domain.ParseLeadStatus(status)
	if !ok {
		s.logger.Warn("UpdateLeadStatus: invalid status=%s for lead id=%s", status, id)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, leadRepo.ErrLeadNotFound) {
			s.logger.Warn("UpdateLeadStatus: lead id=%s not found", id)
			return ErrLeadNotFound
		}
		s.logger.Error("UpdateLeadStatus: repository error for lead id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateLeadStatus: successfully updated lead id=%s to status=%s", id, newStatus)
	return nil
}

// validateCreateRequest проверяет валидность запроса на создание заявки
func validateCreateRequest(req *models.CreateLeadRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	// Достаточно одного контакта: email или телефон
	hasEmail := strings.Contains(req.Email, "@")
	hasPhone := strings.TrimSpace(req.Phone) != ""
	if !hasEmail && !hasPhone {
		return fmt.Errorf("%w: email or phone is required", ErrInvalidInput)
	}

	if req.Email != "" && !hasEmail {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}

	if len(req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message is too long", ErrInvalidInput)
	}

	switch req.Source {
	case SourceForm, SourceChatbot, SourceLanding:
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidInput, req.Source)
	}

	return nil
}
