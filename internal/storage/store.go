// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/coversync/coversync/internal/models"
)

// Sentinel errors for the storage layer. Implementations wrap these with
// %w so callers can classify failures with errors.Is.
var (
	// ErrNotFound signals that the targeted record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrStorageUnavailable signals that the durable medium could not be
	// read or written (disk error, quota, closed handle).
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCorruptRecord signals that a stored payload failed to deserialize
	// into the expected shape. A corrupt collection is never silently
	// treated as empty: that would mask data loss.
	ErrCorruptRecord = errors.New("corrupt record")
)

// Store defines the interface for CoverSync persistence.
// This abstraction allows swapping storage backends without changing the
// service layer.
//
// Create methods assign the record's ID in place, along with CreatedAt and
// UpdatedAt where the entity carries them (claims do not). Update methods
// apply a patch field-by-field and return the updated record, or
// ErrNotFound without side effects. Delete methods report whether a record
// was removed.
type Store interface {
	// Clients.
	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id int64) (*models.Client, error)
	CreateClient(ctx context.Context, client *models.Client) error
	UpdateClient(ctx context.Context, id int64, patch models.ClientPatch) (*models.Client, error)
	DeleteClient(ctx context.Context, id int64) (bool, error)

	// Policies.
	ListPolicies(ctx context.Context) ([]models.Policy, error)
	GetPolicy(ctx context.Context, id int64) (*models.Policy, error)
	CreatePolicy(ctx context.Context, policy *models.Policy) error
	UpdatePolicy(ctx context.Context, id int64, patch models.PolicyPatch) (*models.Policy, error)
	DeletePolicy(ctx context.Context, id int64) (bool, error)

	// Claims.
	ListClaims(ctx context.Context) ([]models.Claim, error)
	GetClaim(ctx context.Context, id int64) (*models.Claim, error)
	CreateClaim(ctx context.Context, claim *models.Claim) error
	UpdateClaim(ctx context.Context, id int64, patch models.ClaimPatch) (*models.Claim, error)
	DeleteClaim(ctx context.Context, id int64) (bool, error)

	// Policy type catalog (read-only).
	ListPolicyTypes(ctx context.Context) ([]models.PolicyType, error)
	GetPolicyType(ctx context.Context, id int64) (*models.PolicyType, error)

	// Dashboard queries, derived from policies and claims.
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
	GetRecentPolicies(ctx context.Context) ([]models.Policy, error)
	GetRenewalPolicies(ctx context.Context) ([]models.Policy, error)

	// Users.
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)

	// SMS templates.
	ListSmsTemplates(ctx context.Context) ([]models.SmsTemplate, error)
	GetSmsTemplate(ctx context.Context, id int64) (*models.SmsTemplate, error)
	CreateSmsTemplate(ctx context.Context, tmpl *models.SmsTemplate) error
	UpdateSmsTemplate(ctx context.Context, id int64, patch models.SmsTemplatePatch) (*models.SmsTemplate, error)
	DeleteSmsTemplate(ctx context.Context, id int64) (bool, error)

	// API partners. CreatePartner generates the partner's API key;
	// RotatePartnerKey replaces it.
	ListPartners(ctx context.Context) ([]models.Partner, error)
	GetPartner(ctx context.Context, id int64) (*models.Partner, error)
	GetPartnerByAPIKey(ctx context.Context, key string) (*models.Partner, error)
	CreatePartner(ctx context.Context, partner *models.Partner) error
	UpdatePartner(ctx context.Context, id int64, patch models.PartnerPatch) (*models.Partner, error)
	DeletePartner(ctx context.Context, id int64) (bool, error)
	RotatePartnerKey(ctx context.Context, id int64) (*models.Partner, error)

	// Audit trail (append-only).
	ListAuditEntries(ctx context.Context) ([]models.AuditEntry, error)
	AppendAuditEntry(ctx context.Context, entry *models.AuditEntry) error

	// Close releases any resources held by the store.
	Close() error
}
