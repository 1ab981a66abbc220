package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompensationStack_UnwindsInReverse(t *testing.T) {
	var order []string
	stack := &compensationStack{}
	for _, name := range []string{"logo", "owner", "team 0"} {
		stack.push(name, func(context.Context) error {
			order = append(order, name)

			return nil
		})
	}

	require.NoError(t, stack.unwind(context.Background(), newDiscardLogger()))
	assert.Equal(t, []string{"team 0", "owner", "logo"}, order)
	assert.Equal(t, 0, stack.len())
}

func TestCompensationStack_ContinuesAfterFailureAndJoinsErrors(t *testing.T) {
	ran := 0
	stack := &compensationStack{}
	stack.push("first", func(context.Context) error {
		ran++

		return nil
	})
	stack.push("second", func(context.Context) error {
		ran++

		return errors.New("bucket unavailable")
	})
	stack.push("third", func(context.Context) error {
		ran++

		return errors.New("timeout")
	})

	err := stack.unwind(context.Background(), newDiscardLogger())
	require.Error(t, err)
	assert.Equal(t, 3, ran)
	assert.Contains(t, err.Error(), "second: bucket unavailable")
	assert.Contains(t, err.Error(), "third: timeout")
}

func TestCompensationStack_RunsWithCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stack := &compensationStack{}
	stack.push("delete", func(ctx context.Context) error { return ctx.Err() })

	assert.NoError(t, stack.unwind(ctx, newDiscardLogger()))
}
