package localstore

import (
	"context"
	"fmt"

	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
)

// ListSmsTemplates returns the full template collection in storage order.
func (s *Store) ListSmsTemplates(ctx context.Context) ([]models.SmsTemplate, error) {
	defer s.lock(colSmsTemplates)()
	return load(ctx, s, colSmsTemplates, s.seed.SmsTemplates)
}

// GetSmsTemplate retrieves a template by id.
func (s *Store) GetSmsTemplate(ctx context.Context, id int64) (*models.SmsTemplate, error) {
	defer s.lock(colSmsTemplates)()
	templates, err := load(ctx, s, colSmsTemplates, s.seed.SmsTemplates)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		if templates[i].ID == id {
			tmpl := templates[i]
			return &tmpl, nil
		}
	}
	return nil, fmt.Errorf("%w: sms template %d", storage.ErrNotFound, id)
}

// CreateSmsTemplate appends a new template, assigning its id and timestamps
// in place.
func (s *Store) CreateSmsTemplate(ctx context.Context, tmpl *models.SmsTemplate) error {
	defer s.lock(colSmsTemplates)()
	templates, err := load(ctx, s, colSmsTemplates, s.seed.SmsTemplates)
	if err != nil {
		return err
	}

	tmpl.ID = nextID(templates, func(t models.SmsTemplate) int64 { return t.ID })
	now := s.now().Unix()
	tmpl.CreatedAt = now
	tmpl.UpdatedAt = now

	templates = append(templates, *tmpl)
	return save(ctx, s, colSmsTemplates, templates)
}

// UpdateSmsTemplate applies the patch to the template with the given id and
// refreshes UpdatedAt. Returns ErrNotFound without side effects when the id
// is absent.
func (s *Store) UpdateSmsTemplate(ctx context.Context, id int64, patch models.SmsTemplatePatch) (*models.SmsTemplate, error) {
	defer s.lock(colSmsTemplates)()
	templates, err := load(ctx, s, colSmsTemplates, s.seed.SmsTemplates)
	if err != nil {
		return nil, err
	}

	for i := range templates {
		if templates[i].ID != id {
			continue
		}
		if patch.Name != nil {
			templates[i].Name = *patch.Name
		}
		if patch.Body != nil {
			templates[i].Body = *patch.Body
		}
		templates[i].UpdatedAt = s.now().Unix()
		if err := save(ctx, s, colSmsTemplates, templates); err != nil {
			return nil, err
		}
		updated := templates[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("%w: sms template %d", storage.ErrNotFound, id)
}

// DeleteSmsTemplate removes the template with the given id, reporting
// whether a removal occurred.
func (s *Store) DeleteSmsTemplate(ctx context.Context, id int64) (bool, error) {
	defer s.lock(colSmsTemplates)()
	templates, err := load(ctx, s, colSmsTemplates, s.seed.SmsTemplates)
	if err != nil {
		return false, err
	}

	for i := range templates {
		if templates[i].ID == id {
			templates = append(templates[:i], templates[i+1:]...)
			if err := save(ctx, s, colSmsTemplates, templates); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
