package localstore

import "github.com/coversync/coversync/internal/models"

// Seed is the dataset materialized into a slot the first time it is read
// and found never-written. A zero Seed leaves every collection empty.
type Seed struct {
	Clients      []models.Client
	Policies     []models.Policy
	Claims       []models.Claim
	PolicyTypes  []models.PolicyType
	Users        []models.User
	SmsTemplates []models.SmsTemplate
	Partners     []models.Partner
	AuditEntries []models.AuditEntry
}

// DefaultSeed returns the sample dataset a fresh installation starts with:
// the cover product catalog, a handful of clients with policies and claims,
// and the standard SMS templates. Users, partners and the audit trail start
// empty.
func DefaultSeed() Seed {
	return Seed{
		PolicyTypes: []models.PolicyType{
			{
				ID:             1,
				Name:           "Single Funeral Plan",
				Description:    "Cover for one life assured.",
				BasePremium:    120,
				CoverageAmount: 15000,
				MinAge:         18,
				MaxAge:         65,
			},
			{
				ID:             2,
				Name:           "Family Funeral Plan",
				Description:    "Cover for the main member, spouse and up to four children.",
				BasePremium:    250,
				CoverageAmount: 30000,
				MinAge:         18,
				MaxAge:         60,
			},
			{
				ID:             3,
				Name:           "Extended Family Plan",
				Description:    "Cover for up to eight extended family members.",
				BasePremium:    380,
				CoverageAmount: 25000,
				MinAge:         18,
				MaxAge:         75,
			},
			{
				ID:             4,
				Name:           "Pensioner Plan",
				Description:    "Cover for members joining after age 60.",
				BasePremium:    180,
				CoverageAmount: 20000,
				MinAge:         60,
				MaxAge:         85,
			},
		},
		Clients: []models.Client{
			{
				ID:            1,
				Name:          "Thabo Nkosi",
				Email:         "thabo.nkosi@example.com",
				Phone:         "+27 82 555 0101",
				IDNumber:      "7804125289081",
				Address:       "14 Vilakazi Street",
				City:          "Soweto",
				Province:      "Gauteng",
				PostalCode:    "1804",
				DateOfBirth:   "1978-04-12",
				Gender:        "Male",
				MaritalStatus: "Married",
				Occupation:    "Teacher",
				CreatedAt:     1704103200,
				UpdatedAt:     1704103200,
			},
			{
				ID:            2,
				Name:          "Maria van der Merwe",
				Email:         "maria.vdm@example.com",
				Phone:         "+27 83 555 0102",
				IDNumber:      "6511230045086",
				Address:       "22 Kloof Road",
				City:          "Cape Town",
				Province:      "Western Cape",
				PostalCode:    "8001",
				DateOfBirth:   "1965-11-23",
				Gender:        "Female",
				MaritalStatus: "Widowed",
				Occupation:    "Nurse",
				CreatedAt:     1704189600,
				UpdatedAt:     1704189600,
			},
			{
				ID:            3,
				Name:          "Sipho Dlamini",
				Email:         "sipho.dlamini@example.com",
				Phone:         "+27 84 555 0103",
				IDNumber:      "8902285111083",
				Address:       "7 Umgeni Drive",
				City:          "Durban",
				Province:      "KwaZulu-Natal",
				PostalCode:    "4001",
				DateOfBirth:   "1989-02-28",
				Gender:        "Male",
				MaritalStatus: "Single",
				Occupation:    "Electrician",
				CreatedAt:     1704276000,
				UpdatedAt:     1704276000,
			},
		},
		Policies: []models.Policy{
			{
				ID:               1,
				PolicyNumber:     "POL-2024-0001",
				ClientID:         1,
				ClientName:       "Thabo Nkosi",
				PolicyType:       "Family Funeral Plan",
				Premium:          250,
				Status:           models.PolicyStatusActive,
				StartDate:        "2024-01-01",
				EndDate:          "2024-12-31",
				PaymentFrequency: models.FrequencyMonthly,
				CoverageAmount:   30000,
				Agent:            "L. Mokoena",
				CreatedAt:        1704103500,
				UpdatedAt:        1704103500,
			},
			{
				ID:               2,
				PolicyNumber:     "POL-2024-0002",
				ClientID:         2,
				ClientName:       "Maria van der Merwe",
				PolicyType:       "Pensioner Plan",
				Premium:          180,
				Status:           models.PolicyStatusActive,
				StartDate:        "2024-01-02",
				EndDate:          "2025-01-01",
				PaymentFrequency: models.FrequencyMonthly,
				CoverageAmount:   20000,
				Agent:            "L. Mokoena",
				CreatedAt:        1704189900,
				UpdatedAt:        1704189900,
			},
			{
				ID:               3,
				PolicyNumber:     "POL-2024-0003",
				ClientID:         3,
				ClientName:       "Sipho Dlamini",
				PolicyType:       "Single Funeral Plan",
				Premium:          120,
				Status:           models.PolicyStatusLapsed,
				StartDate:        "2024-01-03",
				EndDate:          "2024-07-03",
				PaymentFrequency: models.FrequencyMonthly,
				CoverageAmount:   15000,
				Notes:            "Lapsed after three missed debit orders.",
				CreatedAt:        1704276300,
				UpdatedAt:        1712050000,
			},
		},
		Claims: []models.Claim{
			{
				ID:          1,
				ClaimNumber: "CLM-2024-0001",
				PolicyID:    1,
				ClientID:    1,
				Description: "Funeral cover claim for spouse.",
				Amount:      30000,
				Status:      models.ClaimStatusPending,
				SubmittedAt: "2024-03-15",
			},
			{
				ID:          2,
				ClaimNumber: "CLM-2024-0002",
				PolicyID:    2,
				ClientID:    2,
				Description: "Funeral cover claim for dependent.",
				Amount:      20000,
				Status:      models.ClaimStatusApproved,
				SubmittedAt: "2024-02-20",
				ProcessedAt: "2024-03-01",
				Notes:       "Paid to nominated beneficiary.",
			},
		},
		SmsTemplates: []models.SmsTemplate{
			{
				ID:        1,
				Name:      "Payment Reminder",
				Body:      "Hi {{name}}, your CoverSync premium of R{{amount}} is due on {{date}}. Please ensure funds are available.",
				CreatedAt: 1704103200,
				UpdatedAt: 1704103200,
			},
			{
				ID:        2,
				Name:      "Claim Received",
				Body:      "Hi {{name}}, we have received claim {{claimNumber}} and will be in touch within 48 hours.",
				CreatedAt: 1704103200,
				UpdatedAt: 1704103200,
			},
			{
				ID:        3,
				Name:      "Lapse Warning",
				Body:      "Hi {{name}}, policy {{policyNumber}} is at risk of lapsing. Contact us to keep your cover active.",
				CreatedAt: 1704103200,
				UpdatedAt: 1704103200,
			},
		},
	}
}
