package frontdesk

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/frontdesk/business/availability"
	"encore.app/frontdesk/business/currency"
	"encore.app/frontdesk/business/ledger"
	"encore.app/frontdesk/business/payment"
	"encore.app/frontdesk/business/reservation"
	"encore.app/frontdesk/domain"
	"encore.app/frontdesk/repository"
	"encore.app/frontdesk/workflow"
)

var frontdeskDB = sqldb.NewDatabase("frontdesk", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

const taskQueue = "stay-period"

//encore:service
type Service struct {
	currency     currency.Business
	availability availability.Business
	ledger       ledger.Business
	payment      payment.Business
	reservation  reservation.Business

	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(frontdeskDB)

	repo := repository.NewRepository(pgxdb)
	stateMachine := domain.NewStayStateMachine(pgxdb, repo.Reservations, repo.Charges)

	currencyBusiness := currency.NewCurrencyBusiness(repo.Rates)
	availabilityBusiness := availability.NewAvailabilityBusiness(repo.Occupancies)
	ledgerBusiness := ledger.NewLedgerBusiness(repo.Reservations, repo.Charges, repo.Payments, currencyBusiness)
	paymentBusiness := payment.NewPaymentBusiness(repo.Reservations, repo.Payments, currencyBusiness)
	reservationBusiness := reservation.NewReservationBusiness(repo.Reservations, repo.Charges, availabilityBusiness, currencyBusiness, stateMachine)

	workflow.SetActivityDependencies(reservationBusiness)

	temporalClient, err := client.Dial(client.Options{
		HostPort: os.Getenv("TEMPORAL_ADDRESS"),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	w := worker.New(temporalClient, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.StayPeriod)
	w.RegisterActivity(workflow.CheckInReservationActivity)
	w.RegisterActivity(workflow.CheckOutReservationActivity)
	w.RegisterActivity(workflow.RecalculateTotalActivity)
	if err := w.Start(); err != nil {
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	rlog.Info("frontdesk service initialized", "task_queue", taskQueue)

	return &Service{
		currency:     currencyBusiness,
		availability: availabilityBusiness,
		ledger:       ledgerBusiness,
		payment:      paymentBusiness,
		reservation:  reservationBusiness,
		temporal:     temporalClient,
		worker:       w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}
