package domain

import (
	"encore.dev/beta/errs"

	"encore.app/frontdesk/model"
)

// PaymentAttempt tracks a single payment-recording attempt through
// Draft → Validating → {Rejected | Recording → {Recorded | Failed}}.
// Transitions are guarded so a misuse in the business layer fails loudly
// instead of recording a payment from an unvalidated state.
type PaymentAttempt struct {
	state model.PaymentState
}

func NewPaymentAttempt() *PaymentAttempt {
	return &PaymentAttempt{state: model.PaymentStateDraft}
}

func (a *PaymentAttempt) State() model.PaymentState {
	return a.state
}

// Begin moves the attempt from Draft into Validating.
func (a *PaymentAttempt) Begin() error {
	return a.transition(model.PaymentStateDraft, model.PaymentStateValidating)
}

// Reject marks a validation failure. The attempt is terminal afterwards;
// the user corrects input and submits a fresh attempt.
func (a *PaymentAttempt) Reject() error {
	return a.transition(model.PaymentStateValidating, model.PaymentStateRejected)
}

// StartRecording moves a validated attempt into the write phase.
func (a *PaymentAttempt) StartRecording() error {
	return a.transition(model.PaymentStateValidating, model.PaymentStateRecording)
}

// Complete marks the payment row as inserted.
func (a *PaymentAttempt) Complete() error {
	return a.transition(model.PaymentStateRecording, model.PaymentStateRecorded)
}

// Fail marks a datastore rejection of the write. No automatic retry.
func (a *PaymentAttempt) Fail() error {
	return a.transition(model.PaymentStateRecording, model.PaymentStateFailed)
}

func (a *PaymentAttempt) transition(from, to model.PaymentState) error {
	if a.state != from {
		return &errs.Error{
			Code:    errs.Internal,
			Message: "invalid payment state transition from " + string(a.state) + " to " + string(to),
		}
	}
	a.state = to
	return nil
}
