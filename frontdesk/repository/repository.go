package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/frontdesk/repository/charges"
	"encore.app/frontdesk/repository/occupancies"
	"encore.app/frontdesk/repository/payments"
	"encore.app/frontdesk/repository/rates"
	"encore.app/frontdesk/repository/reservations"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Rates        rates.Querier
	Occupancies  occupancies.Querier
	Reservations reservations.Querier
	Charges      charges.Querier
	Payments     payments.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Rates:        rates.New(db),
		Occupancies:  occupancies.New(db),
		Reservations: reservations.New(db),
		Charges:      charges.New(db),
		Payments:     payments.New(db),
	}
}
