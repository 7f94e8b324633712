package domain

import "time"

type Partner struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// UsageEntry is one immutable ledger row. Derived fields (Withdrawl,
// WithdrawlByCash, Left) are computed once when the entry is created and
// stored verbatim, never recomputed on read.
type UsageEntry struct {
	Date            time.Time `db:"entry_date"`
	LastRead        float64   `db:"last_read"`
	NewRead         float64   `db:"new_read"`
	Withdrawl       float64   `db:"withdrawl"`
	WithdrawlPrice  float64   `db:"withdrawl_price"`
	WithdrawlByCash float64   `db:"withdrawl_by_cash"`
	Paid            float64   `db:"paid"`
	Left            float64   `db:"left_amount"`
}

type Summary struct {
	TotalConsumption float64
	TotalCashAmount  float64
	TotalPaid        float64
	TotalBalance     float64
}

type PartnerOverview struct {
	Name    string
	Entries int
	Summary Summary
}

type Tariff struct {
	Rate      float64
	Currency  string
	UpdatedAt time.Time
}
