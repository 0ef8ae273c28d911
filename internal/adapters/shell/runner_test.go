package shell_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/spritekit/internal/adapters/shell"
	"go.trai.ch/spritekit/internal/core/domain"
	"go.trai.ch/spritekit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRunner_Run_CapturesStdout(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := shell.NewRunner(mocks.NewMockLogger(ctrl))

	var stdout bytes.Buffer
	err := runner.Run(context.Background(), []string{"sh", "-c", "printf '16 32'"}, &stdout)
	require.NoError(t, err)

	assert.Equal(t, "16 32", stdout.String())
}

func TestRunner_Run_ForwardsStderrLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		log.EXPECT().Warn("sh: warning one"),
		log.EXPECT().Warn("sh: partial"),
	)
	runner := shell.NewRunner(log)

	err := runner.Run(context.Background(), []string{"sh", "-c", "echo 'warning one' >&2; printf partial >&2"}, nil)
	require.NoError(t, err)
}

func TestRunner_Run_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := shell.NewRunner(mocks.NewMockLogger(ctrl))

	err := runner.Run(context.Background(), []string{"sh", "-c", "exit 42"}, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrToolFailed.Error())
	assert.ErrorContains(t, err, "exit status 42")
}

func TestRunner_Run_MissingTool(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := shell.NewRunner(mocks.NewMockLogger(ctrl))

	err := runner.Run(context.Background(), []string{"nonexistent-command-xyz123"}, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrToolFailed.Error())
}

func TestRunner_Run_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := shell.NewRunner(mocks.NewMockLogger(ctrl))

	err := runner.Run(context.Background(), nil, nil)
	assert.ErrorIs(t, err, domain.ErrToolNotConfigured)
}

func TestRunner_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := shell.NewRunner(mocks.NewMockLogger(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.Run(ctx, []string{"sh", "-c", "sleep 5"}, nil)
	require.Error(t, err)
}
