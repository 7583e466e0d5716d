// Package models defines the core domain models for CoverSync.
//
// # Records
//
//   - Client: a policyholder with contact and profile details
//   - Policy: a funeral cover policy linked to a client
//   - Claim: a claim lodged against a policy
//   - PolicyType: a catalog entry describing a cover product (read-only)
//   - DashboardStats: aggregates derived from policies and claims, never stored
//
// Back-office records:
//
//   - User: a staff account with a role (admin, agent, viewer)
//   - AuditEntry: one line of the mutation audit trail
//   - SmsTemplate: a reusable notification message body
//   - Partner: an API integration partner holding an API key
//
// # Design Principles
//
//  1. Records are flat structs serialized to JSON; the storage layer persists
//     each collection as a single JSON document.
//  2. Relationships are ID fields, never pointers. Referential integrity is
//     not enforced: deleting a client leaves its policies' ClientID dangling.
//  3. Every mutable record has a companion Patch type listing only the fields
//     an update may touch, as optional pointers. Updates are applied
//     field-by-field, never by reflection or map merging.
//  4. Ids are assigned sequentially per collection by the store. Two
//     collections never share an id space.
package models
