package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	apierrors "github.com/nice-elevateai/elevateai-go/client/internal/errors"
	"github.com/nice-elevateai/elevateai-go/client/internal/types"
)

// DefaultPollInterval is the pause between status polls when a PollPolicy
// leaves Interval unset.
const DefaultPollInterval = 60 * time.Second

// PollPolicy bounds AwaitProcessed.
type PollPolicy struct {
	// Interval between status polls. Zero means DefaultPollInterval.
	Interval time.Duration
	// MaxAttempts caps the number of status polls. Zero means unbounded;
	// set Timeout or cancel the context in that case.
	MaxAttempts int
	// Timeout bounds the whole wait. Zero means no extra deadline.
	Timeout time.Duration
	// TolerateTransient keeps polling through recoverable status errors
	// (5xx, 408, 429, network). Each one still counts as an attempt.
	TolerateTransient bool
}

func (p PollPolicy) withDefaults() PollPolicy {
	if p.Interval <= 0 {
		p.Interval = DefaultPollInterval
	}
	if p.MaxAttempts < 0 {
		p.MaxAttempts = 0
	}
	return p
}

// errNotTerminal marks a poll that saw a non-terminal status.
var errNotTerminal = errors.New("interaction not terminal yet")

// AwaitProcessed polls Status until the interaction reaches a terminal state
// and returns the last status seen.
//
//   - "processed" returns nil.
//   - A failure terminal returns ErrInteractionFailed.
//   - Running out of attempts returns ErrPollExhausted, also wrapping the
//     last tolerated status error when there was one.
//   - Context cancellation or Timeout returns the context error.
//   - Any other status error is returned as is, unless TolerateTransient is
//     set and the error is recoverable.
func (c *Client) AwaitProcessed(ctx context.Context, ref InteractionRef, policy PollPolicy) (Status, error) {
	id, err := types.ValidateRef(ref)
	if err != nil {
		return "", err
	}
	policy = policy.withDefaults()
	if policy.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, policy.Timeout)
		defer cancel()
	}

	var (
		last     Status
		attempts int
	)
	poll := func() error {
		attempts++
		s, err := c.Status(ctx, ref)
		if err != nil {
			if policy.TolerateTransient && ctx.Err() == nil && isTransient(err) {
				pollAttemptsTotal.WithLabelValues("transient").Inc()
				return err
			}
			pollAttemptsTotal.WithLabelValues("error").Inc()
			return backoff.Permanent(err)
		}
		last = s
		switch {
		case s.IsFailure():
			pollAttemptsTotal.WithLabelValues("failed").Inc()
			return backoff.Permanent(fmt.Errorf("%w: interaction %s reached %q", ErrInteractionFailed, id, s))
		case s.IsTerminal():
			pollAttemptsTotal.WithLabelValues("processed").Inc()
			return nil
		default:
			pollAttemptsTotal.WithLabelValues("pending").Inc()
			return errNotTerminal
		}
	}

	var b backoff.BackOff = backoff.NewConstantBackOff(policy.Interval)
	if policy.MaxAttempts > 0 {
		b = backoff.WithMaxRetries(b, uint64(policy.MaxAttempts-1))
	}
	b = backoff.WithContext(b, ctx)

	notify := func(err error, wait time.Duration) {
		log.Debug().
			Str("interaction_id", id).
			Str("status", string(last)).
			Int("attempt", attempts).
			Dur("next_poll_in", wait).
			AnErr("poll_error", ignoreNotTerminal(err)).
			Msg("awaiting interaction")
	}

	err = backoff.RetryNotify(poll, b, notify)
	switch {
	case err == nil:
		return last, nil
	case errors.Is(err, errNotTerminal) || (policy.TolerateTransient && isTransient(err)):
		if ctxErr := ctx.Err(); ctxErr != nil {
			return last, ctxErr
		}
		if errors.Is(err, errNotTerminal) {
			return last, fmt.Errorf("%w: %d attempts, last status %q", ErrPollExhausted, attempts, last)
		}
		return last, fmt.Errorf("%w: %d attempts, last status %q: %w", ErrPollExhausted, attempts, last, err)
	default:
		return last, err
	}
}

func ignoreNotTerminal(err error) error {
	if errors.Is(err, errNotTerminal) {
		return nil
	}
	return err
}

// isTransient reports whether err is an API failure worth polling through.
// Decode and validation errors are not.
func isTransient(err error) bool {
	var apiErr *apierrors.APIError
	return errors.As(err, &apiErr) && apiErr.Category == apierrors.Recoverable
}
