package frontdesk

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/frontdesk/model"
)

type GetBalanceRequest struct {
	TenantID        int64  `query:"tenant_id"`
	LocationID      int64  `query:"location_id"`
	DisplayCurrency string `query:"display_currency"`
}

type BalanceResponse struct {
	Snapshot model.BalanceSnapshot `json:"snapshot"`
	Currency model.CurrencyMeta    `json:"currency"`
}

//encore:api public path=/v1/reservations/:id/balance method=GET
func (s *Service) GetBalance(ctx context.Context, id int64, req *GetBalanceRequest) (*BalanceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid reservation ID"}
	}

	snapshot, err := s.ledger.GetBalance(ctx, req.TenantID, req.LocationID, id, req.DisplayCurrency)
	if err != nil {
		rlog.Error("failed to get balance", "error", err, "id", id)
		return nil, err
	}

	return &BalanceResponse{
		Snapshot: *snapshot,
		Currency: model.MetaForCurrency(snapshot.DisplayCurrency),
	}, nil
}
