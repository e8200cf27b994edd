package program

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetchain/cmd/back/internal/app"
	"tweetchain/cmd/back/internal/ledger"
	"tweetchain/internal/metrics"
)

func TestInstructionMetrics(t *testing.T) {
	e := newEnv(t)
	failed := metrics.InstructionsTotal.WithLabelValues(InstructionSendTweet, "TopicTooLong")
	ok := metrics.InstructionsTotal.WithLabelValues(InstructionDeleteTweet, "ok")
	failedBefore := testutil.ToFloat64(failed)
	okBefore := testutil.ToFloat64(ok)
	reclaimedBefore := testutil.ToFloat64(metrics.LamportsReclaimed)

	tweet := newKey(t)
	_, err := e.program.SendTweet(e.ctx, Accounts{
		Tweet:   tweet,
		Author:  e.author,
		Signers: NewSigners(tweet, e.author),
	}, strings.Repeat("x", 51), "gm")
	require.Error(t, err)

	sent := e.send(t, e.author, "", "gm")
	refund, err := e.program.DeleteTweet(e.ctx, Accounts{Tweet: sent, Author: e.author, Signers: NewSigners(e.author)})
	require.NoError(t, err)

	assert.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, reclaimedBefore+float64(refund), testutil.ToFloat64(metrics.LamportsReclaimed))
}

func TestResultLabel(t *testing.T) {
	for label, err := range map[string]error{
		"ok":                         nil,
		"Unauthorized":               fmt.Errorf("update: %w", app.ErrUnauthorized),
		"TopicTooLong":               app.ErrTopicTooLong,
		"MissingSignature":           fmt.Errorf("x: %w", ledger.ErrMissingSignature),
		"AccountInUse":               ledger.ErrAccountInUse,
		"AccountNotFound":            ledger.ErrAccountNotFound,
		"InsufficientFunds":          ledger.ErrInsufficientFunds,
		"AccountOwnedByWrongProgram": ledger.ErrAccountOwnedByWrongProgram,
		"LamportsOverflow":           fmt.Errorf("credit: %w", ledger.ErrLamportsOverflow),
		"error":                      errors.New("boom"),
	} {
		assert.Equal(t, label, resultLabel(err))
	}
}
