package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetchain/internal/account"
)

func newKey(t *testing.T) account.PublicKey {
	t.Helper()
	kp, err := account.NewKeypair()
	require.NoError(t, err)
	return kp.PublicKey()
}

func TestRentMinimumBalance(t *testing.T) {
	rent := DefaultRent()
	assert.Equal(t, uint64(10467840), rent.MinimumBalance(1376))
	assert.Equal(t, uint64(890880), rent.MinimumBalance(0))
}

func TestMemoryAtomicCommit(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	addr := newKey(t)

	err := store.Atomic(ctx, func(tx Tx) error {
		return tx.Put(ctx, Account{Address: addr, Lamports: 10, Data: []byte("gm")})
	})
	require.NoError(t, err)

	acc, err := store.Get(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), acc.Lamports)
	assert.Equal(t, []byte("gm"), acc.Data)
}

func TestMemoryAtomicRollback(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	addr := newKey(t)
	other := newKey(t)

	_, err := Airdrop(ctx, store, addr, 100)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = store.Atomic(ctx, func(tx Tx) error {
		require.NoError(t, tx.Delete(ctx, addr))
		require.NoError(t, tx.Put(ctx, Account{Address: other, Lamports: 100}))

		_, err := tx.Get(ctx, addr)
		require.ErrorIs(t, err, ErrAccountNotFound)
		return boom
	})
	require.ErrorIs(t, err, boom)

	balance, err := Balance(ctx, store, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), balance)

	_, err = store.Get(ctx, other)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	addr := newKey(t)

	require.NoError(t, store.Atomic(ctx, func(tx Tx) error {
		return tx.Put(ctx, Account{Address: addr, Data: []byte{1, 2, 3}})
	}))

	acc, err := store.Get(ctx, addr)
	require.NoError(t, err)
	acc.Data[0] = 9

	again, err := store.Get(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, byte(1), again.Data[0])
}

func TestMemoryDeleteMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	err := store.Atomic(ctx, func(tx Tx) error {
		return tx.Delete(ctx, newKey(t))
	})
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestMemoryList(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	program := newKey(t)

	put := func(owner account.PublicKey, data string) account.PublicKey {
		addr := newKey(t)
		require.NoError(t, store.Atomic(ctx, func(tx Tx) error {
			return tx.Put(ctx, Account{Address: addr, Owner: owner, Data: []byte(data)})
		}))
		return addr
	}
	a := put(program, "aaXX")
	b := put(program, "bbXX")
	put(program, "ccYY")
	put(SystemProgram, "aaXX")

	all, err := store.List(ctx, program)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	got, err := store.List(ctx, program,
		Filter{Offset: 0, Values: [][]byte{[]byte("aa"), []byte("bb")}},
		Filter{Offset: 2, Values: [][]byte{[]byte("XX")}},
	)
	require.NoError(t, err)
	var addrs []account.PublicKey
	for _, acc := range got {
		addrs = append(addrs, acc.Address)
	}
	assert.ElementsMatch(t, []account.PublicKey{a, b}, addrs)

	_, err = store.List(ctx, program, Filter{Values: [][]byte{[]byte("a"), []byte("bb")}})
	assert.ErrorIs(t, err, ErrFilterValueLength)
}

func TestFilterMatchOutOfRange(t *testing.T) {
	f := Filter{Offset: 3, Values: [][]byte{[]byte("xyz")}}
	assert.False(t, f.Match([]byte("abcxy")))
	assert.True(t, f.Match([]byte("abcxyz")))
}

func TestBalanceMissingAccount(t *testing.T) {
	balance, err := Balance(context.Background(), NewMemory(), newKey(t))
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestMemoryCreateExisting(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	addr := newKey(t)

	require.NoError(t, store.Atomic(ctx, func(tx Tx) error {
		return tx.Create(ctx, Account{Address: addr, Lamports: 1})
	}))

	err := store.Atomic(ctx, func(tx Tx) error {
		return tx.Create(ctx, Account{Address: addr, Lamports: 2})
	})
	require.ErrorIs(t, err, ErrAccountInUse)

	balance, err := Balance(ctx, store, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), balance)

	// удаленный в той же транзакции адрес можно создать заново
	require.NoError(t, store.Atomic(ctx, func(tx Tx) error {
		require.NoError(t, tx.Delete(ctx, addr))
		return tx.Create(ctx, Account{Address: addr, Lamports: 3})
	}))
	balance, err = Balance(ctx, store, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), balance)
}

func TestAirdropOverflow(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	addr := newKey(t)

	_, err := Airdrop(ctx, store, addr, MaxLamports+1)
	require.ErrorIs(t, err, ErrLamportsOverflow)

	_, err = Airdrop(ctx, store, addr, MaxLamports)
	require.NoError(t, err)
	_, err = Airdrop(ctx, store, addr, 1)
	require.ErrorIs(t, err, ErrLamportsOverflow)

	balance, err := Balance(ctx, store, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(MaxLamports), balance)
}

func TestAddLamports(t *testing.T) {
	sum, err := AddLamports(1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), sum)

	_, err = AddLamports(MaxLamports, 1)
	assert.ErrorIs(t, err, ErrLamportsOverflow)
	_, err = AddLamports(0, ^uint64(0))
	assert.ErrorIs(t, err, ErrLamportsOverflow)
}

// racingStore в первой транзакции адрес еще пуст, но Create не проходит:
// аккаунт успела создать другая транзакция
type racingStore struct {
	*Memory
	attempts int
}

func (s *racingStore) Atomic(ctx context.Context, fn func(tx Tx) error) error {
	s.attempts++
	if s.attempts > 1 {
		return s.Memory.Atomic(ctx, fn)
	}
	return s.Memory.Atomic(ctx, func(tx Tx) error { return fn(racingTx{tx}) })
}

type racingTx struct{ Tx }

func (racingTx) Get(ctx context.Context, address account.PublicKey) (Account, error) {
	return Account{}, ErrAccountNotFound
}

func (racingTx) Create(ctx context.Context, acc Account) error {
	return ErrAccountInUse
}

func TestAirdropRetriesConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	store := &racingStore{Memory: NewMemory()}
	addr := newKey(t)

	_, err := Airdrop(ctx, store.Memory, addr, 100)
	require.NoError(t, err)

	balance, err := Airdrop(ctx, store, addr, 50)
	require.NoError(t, err)
	assert.Equal(t, uint64(150), balance)
	assert.Equal(t, 2, store.attempts)
}
