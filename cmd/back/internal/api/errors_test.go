package api

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tweetchain/cmd/back/internal/app"
	"tweetchain/cmd/back/internal/ledger"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{app.ErrTopicTooLong, codes.InvalidArgument},
		{app.ErrContentTooLong, codes.InvalidArgument},
		{app.ErrUnauthorized, codes.PermissionDenied},
		{fmt.Errorf("x: %w", ledger.ErrMissingSignature), codes.Unauthenticated},
		{fmt.Errorf("x: %w", ledger.ErrAccountNotFound), codes.NotFound},
		{fmt.Errorf("x: %w", ledger.ErrAccountInUse), codes.AlreadyExists},
		{fmt.Errorf("x: %w", ledger.ErrInsufficientFunds), codes.FailedPrecondition},
		{fmt.Errorf("x: %w", ledger.ErrAccountOwnedByWrongProgram), codes.FailedPrecondition},
		{fmt.Errorf("x: %w", ledger.ErrLamportsOverflow), codes.FailedPrecondition},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{status.Error(codes.Aborted, "already a status"), codes.Aborted},
		{errors.New("db is down"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(toStatus(context.Background(), tt.err)))
		})
	}
	assert.NoError(t, toStatus(context.Background(), nil))
}

func TestToStatusErrorInfo(t *testing.T) {
	st := status.Convert(toStatus(context.Background(), app.ErrContentTooLong))
	assert.Equal(t, "The provided content should be 280 characters long maximum.", st.Message())

	require.Len(t, st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	require.True(t, ok)
	assert.Equal(t, "ContentTooLong", info.Reason)
	assert.Equal(t, "tweetchain", info.Domain)
	assert.Equal(t, "6001", info.Metadata["code"])
}

func TestInternalErrorHidesCause(t *testing.T) {
	st := status.Convert(toStatus(context.Background(), errors.New("password=hunter2")))
	assert.Equal(t, "internal error", st.Message())
}
