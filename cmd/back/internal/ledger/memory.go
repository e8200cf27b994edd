package ledger

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"

	"tweetchain/internal/account"
)

// Memory хранилище в памяти процесса. Транзакции выполняются по одной.
type Memory struct {
	mu       sync.Mutex
	accounts map[account.PublicKey]Account
}

func NewMemory() *Memory {
	return &Memory{accounts: make(map[account.PublicKey]Account)}
}

func (m *Memory) Atomic(ctx context.Context, fn func(tx Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memoryTx{parent: m.accounts, staged: make(map[account.PublicKey]*Account)}
	if err := fn(tx); err != nil {
		return err
	}

	for addr, acc := range tx.staged {
		if acc == nil {
			delete(m.accounts, addr)
			continue
		}
		m.accounts[addr] = *acc
	}
	return nil
}

func (m *Memory) Get(ctx context.Context, address account.PublicKey) (Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[address]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return acc.Clone(), nil
}

func (m *Memory) List(ctx context.Context, owner account.PublicKey, filters ...Filter) ([]Account, error) {
	for _, f := range filters {
		if err := f.Validate(); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var res []Account
	for _, acc := range m.accounts {
		if acc.Owner != owner || !matchAll(acc.Data, filters) {
			continue
		}
		res = append(res, acc.Clone())
	}
	// как order by address в postgres: по байтам
	sort.Slice(res, func(i, j int) bool {
		return bytes.Compare(res[i].Address[:], res[j].Address[:]) < 0
	})
	return res, nil
}

type memoryTx struct {
	parent map[account.PublicKey]Account
	// nil - аккаунт удален в этой транзакции
	staged map[account.PublicKey]*Account
}

func (tx *memoryTx) Get(ctx context.Context, address account.PublicKey) (Account, error) {
	if acc, ok := tx.staged[address]; ok {
		if acc == nil {
			return Account{}, ErrAccountNotFound
		}
		return acc.Clone(), nil
	}
	acc, ok := tx.parent[address]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return acc.Clone(), nil
}

func (tx *memoryTx) Create(ctx context.Context, acc Account) error {
	if _, err := tx.Get(ctx, acc.Address); err == nil {
		return fmt.Errorf("create %s: %w", acc.Address, ErrAccountInUse)
	}
	if acc.Lamports > MaxLamports {
		return ErrLamportsOverflow
	}
	return tx.Put(ctx, acc)
}

func (tx *memoryTx) Put(ctx context.Context, acc Account) error {
	acc = acc.Clone()
	tx.staged[acc.Address] = &acc
	return nil
}

func (tx *memoryTx) Delete(ctx context.Context, address account.PublicKey) error {
	if _, err := tx.Get(ctx, address); err != nil {
		return err
	}
	tx.staged[address] = nil
	return nil
}
