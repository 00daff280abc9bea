package workflow

const (
	// Signal names
	AddChargeSignalName       = "add-charge"
	PaymentRecordedSignalName = "payment-recorded"
	CheckOutSignalName        = "check-out"
)

// AddChargeSignal carries the id of a newly added charge. The activity
// recalculates the reservation totals from the database, so the id is for
// logging only.
type AddChargeSignal struct {
	ChargeID int64 `json:"charge_id"`
}

// PaymentRecordedSignal carries the id of a freshly recorded payment. The
// datastore trigger has already updated the paid and balance columns; the
// workflow recalculates to fold in any concurrent charges.
type PaymentRecordedSignal struct {
	PaymentID int64 `json:"payment_id"`
}

// CheckOutSignal requests a manual check-out before the stay's end date.
type CheckOutSignal struct {
	RequestedBy string `json:"requested_by"`
}
