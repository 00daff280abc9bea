package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.app/frontdesk/model"
)

func TestPaymentAttempt_HappyPath(t *testing.T) {
	attempt := NewPaymentAttempt()
	assert.Equal(t, model.PaymentStateDraft, attempt.State())

	assert.NoError(t, attempt.Begin())
	assert.Equal(t, model.PaymentStateValidating, attempt.State())

	assert.NoError(t, attempt.StartRecording())
	assert.Equal(t, model.PaymentStateRecording, attempt.State())

	assert.NoError(t, attempt.Complete())
	assert.Equal(t, model.PaymentStateRecorded, attempt.State())
}

func TestPaymentAttempt_RejectionPath(t *testing.T) {
	attempt := NewPaymentAttempt()

	assert.NoError(t, attempt.Begin())
	assert.NoError(t, attempt.Reject())
	assert.Equal(t, model.PaymentStateRejected, attempt.State())

	// rejected is terminal
	assert.Error(t, attempt.StartRecording())
	assert.Error(t, attempt.Complete())
	assert.Equal(t, model.PaymentStateRejected, attempt.State())
}

func TestPaymentAttempt_FailurePath(t *testing.T) {
	attempt := NewPaymentAttempt()

	assert.NoError(t, attempt.Begin())
	assert.NoError(t, attempt.StartRecording())
	assert.NoError(t, attempt.Fail())
	assert.Equal(t, model.PaymentStateFailed, attempt.State())

	// failed is terminal, no automatic retry
	assert.Error(t, attempt.Complete())
}

func TestPaymentAttempt_GuardedTransitions(t *testing.T) {
	testCases := []struct {
		name string
		run  func(a *PaymentAttempt) error
	}{
		{name: "reject_before_begin", run: func(a *PaymentAttempt) error { return a.Reject() }},
		{name: "record_before_begin", run: func(a *PaymentAttempt) error { return a.StartRecording() }},
		{name: "complete_before_recording", run: func(a *PaymentAttempt) error {
			if err := a.Begin(); err != nil {
				return err
			}
			return a.Complete()
		}},
		{name: "double_begin", run: func(a *PaymentAttempt) error {
			if err := a.Begin(); err != nil {
				return err
			}
			return a.Begin()
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run(NewPaymentAttempt())
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid payment state transition")
		})
	}
}
