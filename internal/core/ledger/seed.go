package ledger

import (
	"time"

	"github.com/zamreal/property-system/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Fixed portfolio data the process starts with. Ids here are reserved in
// each collection's id set so generated ids can never collide with them.

func seedLeases() []domain.Lease {
	return []domain.Lease{
		{
			ID:          "LS-1001",
			Property:    "Roma Park Apartments #4",
			Tenant:      "Mwamba Zulu",
			Landlord:    "Chileshe Estates",
			MonthlyRent: 15000,
			NextReview:  date(2025, time.February, 1),
			ExpiresOn:   date(2025, time.August, 1),
			Status:      domain.LeaseActive,
		},
		{
			ID:          "LS-1002",
			Property:    "Ibex Hill Villas #2",
			Tenant:      "Hope Banda",
			Landlord:    "Chileshe Estates",
			MonthlyRent: 18000,
			NextReview:  date(2025, time.March, 15),
			ExpiresOn:   date(2025, time.September, 30),
			Status:      domain.LeaseActive,
		},
		{
			ID:          "LS-1003",
			Property:    "Kabulonga Offices #8",
			Tenant:      "Mulenga Logistics",
			Landlord:    "Northwind Ltd",
			MonthlyRent: 25000,
			NextReview:  date(2025, time.January, 20),
			ExpiresOn:   date(2025, time.April, 30),
			Status:      domain.LeaseEnding,
		},
	}
}

func seedPayments() []domain.Payment {
	return []domain.Payment{
		{
			ID:       "PM-8801",
			Tenant:   "Mwamba Zulu",
			Property: "Roma Park Apartments #4",
			Amount:   15000,
			Method:   "Bank Transfer",
			Date:     date(2024, time.November, 5),
			Status:   domain.PaymentConfirmed,
		},
		{
			ID:       "PM-8802",
			Tenant:   "Hope Banda",
			Property: "Ibex Hill Villas #2",
			Amount:   18000,
			Method:   "Cash",
			Date:     date(2024, time.November, 8),
			Status:   domain.PaymentPending,
		},
	}
}

func seedReminders() []domain.Reminder {
	return []domain.Reminder{
		{
			ID:      "RM-7701",
			Tenant:  "Mulenga Logistics",
			Type:    domain.ReminderInvoice,
			DueDate: date(2024, time.November, 15),
			Amount:  25000,
			Channel: domain.ChannelEmail,
		},
		{
			ID:      "RM-7702",
			Tenant:  "Hope Banda",
			Type:    domain.ReminderReminder,
			DueDate: date(2024, time.November, 12),
			Amount:  18000,
			Channel: domain.ChannelSMS,
		},
	}
}

func seedTickets() []domain.MaintenanceTicket {
	return []domain.MaintenanceTicket{
		{
			ID:        "MT-6601",
			Property:  "Ibex Hill Villas #2",
			Tenant:    "Hope Banda",
			Category:  "Plumbing",
			Priority:  domain.PriorityHigh,
			Status:    domain.TicketInProgress,
			CreatedAt: date(2024, time.November, 7),
			Notes:     "Pipe burst reported via tenant portal",
		},
		{
			ID:        "MT-6602",
			Property:  "Roma Park Apartments #4",
			Tenant:    "Mwamba Zulu",
			Category:  "Electrical",
			Priority:  domain.PriorityMedium,
			Status:    domain.TicketNew,
			CreatedAt: date(2024, time.November, 9),
			Notes:     "Kitchen lights flickering",
		},
		{
			ID:        "MT-6603",
			Property:  "Kabulonga Offices #8",
			Tenant:    "Mulenga Logistics",
			Category:  "Air Conditioning",
			Priority:  domain.PriorityLow,
			Status:    domain.TicketNew,
			CreatedAt: date(2024, time.November, 3),
			Notes:     "AC service due",
		},
	}
}
