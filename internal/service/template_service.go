package service

import (
	"context"
	"log/slog"

	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
)

// TemplateService exposes SMS template CRUD to the API layer.
type TemplateService struct {
	store storage.Store
}

// NewTemplateService creates a TemplateService with the given storage
// backend.
func NewTemplateService(store storage.Store) *TemplateService {
	return &TemplateService{store: store}
}

// List returns all templates.
func (s *TemplateService) List(ctx context.Context) ([]models.SmsTemplate, error) {
	return s.store.ListSmsTemplates(ctx)
}

// Get returns one template by id.
func (s *TemplateService) Get(ctx context.Context, id int64) (*models.SmsTemplate, error) {
	return s.store.GetSmsTemplate(ctx, id)
}

// Create stores a new template and records the mutation.
func (s *TemplateService) Create(ctx context.Context, tmpl *models.SmsTemplate) error {
	if err := s.store.CreateSmsTemplate(ctx, tmpl); err != nil {
		slog.Error("CreateSmsTemplate failed", "error", err)
		return err
	}
	slog.Info("SMS template created", "template_id", tmpl.ID, "name", tmpl.Name)
	recordAudit(ctx, s.store, models.AuditActionCreate, "sms-template", tmpl.ID, tmpl.Name)
	return nil
}

// Update patches an existing template and records the mutation.
func (s *TemplateService) Update(ctx context.Context, id int64, patch models.SmsTemplatePatch) (*models.SmsTemplate, error) {
	tmpl, err := s.store.UpdateSmsTemplate(ctx, id, patch)
	if err != nil {
		slog.Error("UpdateSmsTemplate failed", "template_id", id, "error", err)
		return nil, err
	}
	slog.Info("SMS template updated", "template_id", id)
	recordAudit(ctx, s.store, models.AuditActionUpdate, "sms-template", id, tmpl.Name)
	return tmpl, nil
}

// Delete removes a template and records the mutation.
func (s *TemplateService) Delete(ctx context.Context, id int64) (bool, error) {
	removed, err := s.store.DeleteSmsTemplate(ctx, id)
	if err != nil {
		slog.Error("DeleteSmsTemplate failed", "template_id", id, "error", err)
		return false, err
	}
	if removed {
		slog.Info("SMS template deleted", "template_id", id)
		recordAudit(ctx, s.store, models.AuditActionDelete, "sms-template", id, "")
	}
	return removed, nil
}
