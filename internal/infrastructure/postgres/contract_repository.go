package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo tabla contratos. valor es NUMERIC (codec shopspring/decimal registrado en el pool).
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador.
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

const contractColumns = `id, cliente_id, numero, fecha_inicio, fecha_fin, valor, estado, created_at, updated_at`

func scanContract(row pgx.Row) (*entity.Contract, error) {
	var c entity.Contract
	if err := row.Scan(&c.ID, &c.ClientID, &c.Number, &c.StartDate, &c.EndDate, &c.Value, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContractRepo) Create(ctx context.Context, c *entity.Contract) error {
	query := `
		INSERT INTO contratos (cliente_id, numero, fecha_inicio, fecha_fin, valor, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.ClientID, c.Number, c.StartDate, c.EndDate, c.Value, c.Status, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

func (r *ContractRepo) GetByID(ctx context.Context, id int64) (*entity.Contract, error) {
	c, err := scanContract(r.q.QueryRow(ctx, `SELECT `+contractColumns+` FROM contratos WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return c, nil
}

func (r *ContractRepo) Update(ctx context.Context, c *entity.Contract) error {
	query := `
		UPDATE contratos SET fecha_fin = $2, valor = $3, estado = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, c.ID, c.EndDate, c.Value, c.Status, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ContractRepo) List(ctx context.Context, clientID *int64, limit, offset int) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contratos`
	args := []any{}
	pos := 1
	if clientID != nil {
		query += fmt.Sprintf(" WHERE cliente_id = $%d", pos)
		args = append(args, *clientID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY fecha_inicio DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *ContractRepo) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.q, `DELETE FROM contratos WHERE id = $1`, id, "contract")
}
