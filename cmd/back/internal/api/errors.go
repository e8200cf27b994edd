package api

import (
	"context"
	"errors"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tweetchain/cmd/back/internal/app"
	"tweetchain/cmd/back/internal/ledger"
	"tweetchain/internal/account"
	"tweetchain/internal/logger"
)

const errorDomain = "tweetchain"

// toStatus переводит ошибки программы и леджера в gRPC статус
func toStatus(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var code app.ErrorCode
	if errors.As(err, &code) {
		grpcCode := codes.InvalidArgument
		if code == app.ErrUnauthorized {
			grpcCode = codes.PermissionDenied
		}
		st, detailErr := status.New(grpcCode, code.Error()).WithDetails(&errdetails.ErrorInfo{
			Reason:   code.Name(),
			Domain:   errorDomain,
			Metadata: map[string]string{"code": strconv.FormatUint(uint64(code.Code()), 10)},
		})
		if detailErr != nil {
			return status.Error(grpcCode, code.Error())
		}
		return st.Err()
	}

	switch {
	case errors.Is(err, ledger.ErrMissingSignature):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, ledger.ErrAccountNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ledger.ErrAccountInUse):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrLamportsOverflow),
		errors.Is(err, ledger.ErrAccountOwnedByWrongProgram),
		errors.Is(err, app.ErrAccountDidNotDeserialize),
		errors.Is(err, app.ErrAccountDiscriminatorMismatch):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, account.ErrInvalidPublicKey),
		errors.Is(err, ledger.ErrFilterValueLength):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	}

	logger.FromContext(ctx).Error("internal error", "error", err)
	return status.Error(codes.Internal, "internal error")
}
