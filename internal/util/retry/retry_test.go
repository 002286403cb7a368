package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithExponentialBackoff_FirstAttemptSucceeds(t *testing.T) {
	attempts := 0

	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestWithExponentialBackoff_TransientFailures(t *testing.T) {
	// Mimics a host still booting: the first dials are refused, then the
	// connection goes through.
	attempts := 0

	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("dial tcp: connection refused")
		}
		return nil
	}, WithInitialDelay(5*time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWithExponentialBackoff_Exhaustion(t *testing.T) {
	attempts := 0
	dialErr := errors.New("dial tcp: no route to host")

	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return dialErr
	}, WithMaxRetries(2), WithInitialDelay(5*time.Millisecond))

	require.Error(t, err)
	// One initial attempt plus the configured retries.
	assert.Equal(t, 3, attempts)
	assert.ErrorIs(t, err, dialErr)
	assert.Contains(t, err.Error(), "operation failed after 3 retries")
}

func TestWithExponentialBackoff_FatalNotRetried(t *testing.T) {
	// An auth rejection never heals on its own; retrying just hammers
	// the host.
	attempts := 0

	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return Fatal(errors.New("ssh: unable to authenticate"))
	}, WithInitialDelay(5*time.Millisecond))

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.True(t, IsFatal(err))
}

func TestWithExponentialBackoff_CanceledContext(t *testing.T) {
	attempts := 0
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithExponentialBackoff(ctx, func() error {
		attempts++
		return errors.New("dial tcp: connection refused")
	}, WithInitialDelay(5*time.Millisecond))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestWithExponentialBackoff_TimeoutDuringBackoff(t *testing.T) {
	attempts := 0
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := WithExponentialBackoff(ctx, func() error {
		attempts++
		return errors.New("dial tcp: connection refused")
	}, WithInitialDelay(100*time.Millisecond), WithMaxRetries(10))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.LessOrEqual(t, attempts, 2)
}

func TestWithExponentialBackoff_DelayCap(t *testing.T) {
	attempts := 0
	var stamps []time.Time

	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		stamps = append(stamps, time.Now())
		if attempts < 5 {
			return errors.New("dial tcp: connection refused")
		}
		return nil
	}, WithInitialDelay(10*time.Millisecond), WithMaxDelay(20*time.Millisecond))

	require.NoError(t, err)
	require.Len(t, stamps, 5)

	// Doubling stops at the cap: no gap may grow far beyond MaxDelay.
	for i := 1; i < len(stamps); i++ {
		assert.Less(t, stamps[i].Sub(stamps[i-1]), 60*time.Millisecond)
	}
}

func TestFatal(t *testing.T) {
	assert.Nil(t, Fatal(nil))

	base := errors.New("ssh: handshake failed")
	err := Fatal(base)
	assert.True(t, IsFatal(err))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, base.Error(), err.Error())
}

func TestIsFatal(t *testing.T) {
	assert.False(t, IsFatal(errors.New("dial tcp: connection refused")))
	assert.True(t, IsFatal(Fatal(errors.New("bad key"))))

	// Detection survives further wrapping.
	wrapped := fmt.Errorf("connecting to host: %w", Fatal(errors.New("bad key")))
	assert.True(t, IsFatal(wrapped))
	assert.False(t, IsFatal(nil))
}
