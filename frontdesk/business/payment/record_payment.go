package payment

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/frontdesk/domain"
	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/payments"
	"encore.app/frontdesk/repository/reservations"
)

type RecordPaymentParams struct {
	TenantID       int64
	LocationID     int64
	ReservationID  int64
	Amount         float64
	Currency       string
	AccountID      string
	Method         string
	IdempotencyKey string
}

// RecordPayment validates and records one payment against a reservation.
// The amount is converted into the reservation's currency before the
// overpayment guard; the guard reads the last-known balance and is
// advisory only. The datastore's own constraint is the final authority,
// and its rejection surfaces verbatim. On success exactly one payment row
// is inserted; the reservation's paid/balance columns are updated by the
// datastore trigger, not here.
func (b *business) RecordPayment(ctx context.Context, params RecordPaymentParams) (*model.Payment, error) {
	attempt := domain.NewPaymentAttempt()
	if err := attempt.Begin(); err != nil {
		return nil, err
	}

	if params.Amount <= 0 {
		return nil, rejected(attempt, &errs.Error{Code: errs.InvalidArgument, Message: "amount must be greater than zero"})
	}
	if params.AccountID == "" {
		return nil, rejected(attempt, &errs.Error{Code: errs.InvalidArgument, Message: "account is required"})
	}

	dbReservation, err := b.reservationRepo.GetReservation(ctx, reservations.GetReservationParams{
		ID:         params.ReservationID,
		TenantID:   params.TenantID,
		LocationID: params.LocationID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rejected(attempt, &errs.Error{Code: errs.NotFound, Message: "reservation not found"})
		}
		return nil, rejected(attempt, &errs.Error{Code: errs.Internal, Message: "failed to fetch reservation"})
	}

	conversion, err := b.currencyService.ConvertAmount(ctx, params.TenantID, params.LocationID, params.Currency, dbReservation.Currency, params.Amount)
	if err != nil {
		rlog.Warn("payment currency conversion failed", "reservation_id", params.ReservationID, "currency", params.Currency, "error", err)
		return nil, rejected(attempt, &errs.Error{Code: errs.FailedPrecondition, Message: "unable to convert payment into reservation currency"})
	}

	// Advisory check against the last-read balance. Two concurrent payments
	// can both pass; the database constraint catches that race.
	balanceDue := parseNumeric(dbReservation.TotalAmount) - parseNumeric(dbReservation.PaidAmount)
	if conversion.ConvertedAmount > balanceDue {
		return nil, rejected(attempt, &errs.Error{Code: errs.FailedPrecondition, Message: "payment exceeds balance due"})
	}

	if err := attempt.StartRecording(); err != nil {
		return nil, err
	}

	var metadataJSON []byte
	if conversion.Metadata != nil {
		metadataJSON, err = json.Marshal(conversion.Metadata)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to marshal metadata"}
		}
	}

	dbPayment, err := b.paymentRepo.CreatePayment(ctx, payments.CreatePaymentParams{
		ReservationID:  params.ReservationID,
		AccountID:      params.AccountID,
		Amount:         numericFromAmount(conversion.ConvertedAmount),
		Currency:       dbReservation.Currency,
		Method:         params.Method,
		Metadata:       metadataJSON,
		IdempotencyKey: params.IdempotencyKey,
	})
	if err != nil {
		if stateErr := attempt.Fail(); stateErr != nil {
			return nil, stateErr
		}

		var e *pgconn.PgError
		if errors.As(err, &e) {
			switch e.Code {
			case pgerrcode.UniqueViolation:
				return nil, &errs.Error{Code: errs.AlreadyExists, Message: "payment already recorded"}
			case pgerrcode.CheckViolation, pgerrcode.RaiseException:
				// server-side balance constraint is the final authority
				return nil, &errs.Error{Code: errs.Unavailable, Message: "payment rejected by datastore: " + e.Message}
			}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to record payment"}
	}

	if err := attempt.Complete(); err != nil {
		return nil, err
	}

	result := convertDBPaymentToModel(dbPayment, conversion.Metadata)
	result.SetStayWorkflowID(dbReservation.WorkflowID.String)

	if conversion.Metadata != nil {
		auditRow, auditErr := b.paymentRepo.CreateConversionLog(ctx, payments.CreateConversionLogParams{
			PaymentID:       dbPayment.ID,
			FromCurrency:    params.Currency,
			ToCurrency:      dbReservation.Currency,
			ExchangeRate:    numericFromRate(conversion.Metadata.ExchangeRate),
			OriginalAmount:  numericFromAmount(params.Amount),
			ConvertedAmount: numericFromAmount(conversion.ConvertedAmount),
		})
		if auditErr != nil {
			// the payment itself is recorded; the audit trail is best effort
			rlog.Warn("failed to write conversion audit row", "payment_id", dbPayment.ID, "error", auditErr)
		} else {
			result.Conversion = convertDBConversionLogToModel(auditRow)
		}
	}

	return result, nil
}

func convertDBConversionLogToModel(row payments.ConversionLog) *model.ConversionLog {
	return &model.ConversionLog{
		ID:              row.ID,
		PaymentID:       row.PaymentID,
		FromCurrency:    row.FromCurrency,
		ToCurrency:      row.ToCurrency,
		ExchangeRate:    parseNumeric(row.ExchangeRate),
		OriginalAmount:  parseNumeric(row.OriginalAmount),
		ConvertedAmount: parseNumeric(row.ConvertedAmount),
		CreatedAt:       row.CreatedAt.Time,
	}
}

func rejected(attempt *domain.PaymentAttempt, cause *errs.Error) error {
	if err := attempt.Reject(); err != nil {
		return err
	}
	return cause
}

func convertDBPaymentToModel(dbPayment payments.ReservationPayment, metadata *model.CurrencyMetadata) *model.Payment {
	return &model.Payment{
		ID:             dbPayment.ID,
		ReservationID:  dbPayment.ReservationID,
		AccountID:      dbPayment.AccountID,
		Amount:         parseNumeric(dbPayment.Amount),
		Currency:       dbPayment.Currency,
		Method:         dbPayment.Method,
		Metadata:       metadata,
		IdempotencyKey: dbPayment.IdempotencyKey,
		CreatedAt:      dbPayment.CreatedAt.Time,
	}
}
