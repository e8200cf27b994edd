package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"tweetchain/cmd/back/internal/ledger"
	"tweetchain/internal/account"
)

// Repository ledger.Store поверх postgres
type Repository struct {
	db *sql.DB
}

func NewRepository(rawDB *sql.DB) *Repository {
	return &Repository{db: rawDB}
}

func (d *Repository) Atomic(ctx context.Context, fn func(tx ledger.Tx) error) error {
	tx, err := d.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(&repoTx{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (d *Repository) Get(ctx context.Context, address account.PublicKey) (ledger.Account, error) {
	query := `select address, owner, lamports, data from accounts where address = $1`
	return scanAccount(d.db.QueryRowContext(ctx, query, address[:]))
}

func (d *Repository) List(ctx context.Context, owner account.PublicKey, filters ...ledger.Filter) ([]ledger.Account, error) {
	query, args, err := listQuery(owner, filters)
	if err != nil {
		return nil, err
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []ledger.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

// listQuery фильтры превращаются в substring(...) = ANY(...), substring в postgres с 1
func listQuery(owner account.PublicKey, filters []ledger.Filter) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString(`select address, owner, lamports, data from accounts where owner = $1`)
	args := []any{owner[:]}

	for _, f := range filters {
		if err := f.Validate(); err != nil {
			return "", nil, err
		}
		args = append(args, f.Offset+1, len(f.Values[0]), pq.ByteaArray(f.Values))
		n := len(args)
		fmt.Fprintf(&sb, ` and substring(data from $%d for $%d) = ANY($%d)`, n-2, n-1, n)
	}
	sb.WriteString(` order by address`)
	return sb.String(), args, nil
}

type repoTx struct {
	tx *sql.Tx
}

func (r *repoTx) Get(ctx context.Context, address account.PublicKey) (ledger.Account, error) {
	query := `select address, owner, lamports, data from accounts where address = $1 for update`
	return scanAccount(r.tx.QueryRowContext(ctx, query, address[:]))
}

// uniqueViolation код ошибки postgres для повторного ключа
const uniqueViolation = "23505"

// Create без on conflict: параллельная вставка того же адреса ждет коммита первой и получает ErrAccountInUse
func (r *repoTx) Create(ctx context.Context, acc ledger.Account) error {
	if acc.Lamports > ledger.MaxLamports {
		return fmt.Errorf("create account %s: %w", acc.Address, ledger.ErrLamportsOverflow)
	}
	query := `insert into accounts (address, owner, lamports, data) values ($1, $2, $3, $4)`
	_, err := r.tx.ExecContext(ctx, query, acc.Address[:], acc.Owner[:], int64(acc.Lamports), nonNil(acc.Data))
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("create account %s: %w", acc.Address, ledger.ErrAccountInUse)
	}
	if err != nil {
		return fmt.Errorf("create account %s: %w", acc.Address, err)
	}
	return nil
}

func (r *repoTx) Put(ctx context.Context, acc ledger.Account) error {
	query := `insert into accounts (address, owner, lamports, data) values ($1, $2, $3, $4)
	on conflict (address) do update
	set
	owner = excluded.owner,
	lamports = excluded.lamports,
	data = excluded.data,
	updated_at = now()
	`
	if acc.Lamports > ledger.MaxLamports {
		return fmt.Errorf("put account %s: %w", acc.Address, ledger.ErrLamportsOverflow)
	}
	_, err := r.tx.ExecContext(ctx, query, acc.Address[:], acc.Owner[:], int64(acc.Lamports), nonNil(acc.Data))
	if err != nil {
		return fmt.Errorf("put account %s: %w", acc.Address, err)
	}
	return nil
}

func (r *repoTx) Delete(ctx context.Context, address account.PublicKey) error {
	query := `delete from accounts where address = $1`
	res, err := r.tx.ExecContext(ctx, query, address[:])
	if err != nil {
		return fmt.Errorf("delete account %s: %w", address, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ledger.ErrAccountNotFound
	}
	return nil
}

func nonNil(data []byte) []byte {
	if data == nil {
		return []byte{}
	}
	return data
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (ledger.Account, error) {
	var (
		acc            ledger.Account
		address, owner []byte
		lamports       int64
	)
	err := row.Scan(&address, &owner, &lamports, &acc.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return ledger.Account{}, ledger.ErrAccountNotFound
	}
	if err != nil {
		return ledger.Account{}, err
	}

	if acc.Address, err = account.PublicKeyFromBytes(address); err != nil {
		return ledger.Account{}, err
	}
	if acc.Owner, err = account.PublicKeyFromBytes(owner); err != nil {
		return ledger.Account{}, err
	}
	acc.Lamports = uint64(lamports)
	return acc, nil
}
