package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/buyout/internal/domain/errors"
	"github.com/polkiloo/buyout/internal/domain/model"
)

type purchaseRepository struct {
	storage *Storage
}

const purchaseColumns = `id, title, opened_date, closed_date, weight, delivery_cost_main,
       delivery_cost_local, other_expenses, author_id, exchange, created_at`

var purchaseSort = map[string]string{
	"id":          "id",
	"title":       "title",
	"exchange":    "exchange",
	"opened_date": "opened_date",
	"closed_date": "closed_date",
	"created_at":  "created_at",
}

func scanPurchase(row pgx.Row) (model.Purchase, error) {
	var p model.Purchase
	err := row.Scan(&p.ID, &p.Title, &p.OpenedDate, &p.ClosedDate, &p.Weight, &p.DeliveryCostMain,
		&p.DeliveryCostLocal, &p.OtherExpenses, &p.AuthorID, &p.Exchange, &p.CreatedAt)
	return p, err
}

func (r *purchaseRepository) Create(ctx context.Context, p *model.Purchase) error {
	const query = `INSERT INTO purchases (title, opened_date, closed_date, weight, delivery_cost_main,
                       delivery_cost_local, other_expenses, author_id, exchange)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query, p.Title, p.OpenedDate, p.ClosedDate, p.Weight, p.DeliveryCostMain,
		p.DeliveryCostLocal, p.OtherExpenses, p.AuthorID, p.Exchange).Scan(&p.ID, &p.CreatedAt)
	return mapError(err, domainErrors.ErrNotFound)
}

func (r *purchaseRepository) Update(ctx context.Context, p *model.Purchase) error {
	const query = `UPDATE purchases SET title=$1, opened_date=$2, closed_date=$3, weight=$4,
                       delivery_cost_main=$5, delivery_cost_local=$6, other_expenses=$7, author_id=$8, exchange=$9
                   WHERE id=$10`
	tag, err := r.storage.pool.Exec(ctx, query, p.Title, p.OpenedDate, p.ClosedDate, p.Weight, p.DeliveryCostMain,
		p.DeliveryCostLocal, p.OtherExpenses, p.AuthorID, p.Exchange, p.ID)
	if err != nil {
		return mapError(err, domainErrors.ErrNotFound)
	}
	return expectAffected(tag)
}

// Delete removes purchase together with its orders.
func (r *purchaseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM purchases WHERE id=$1`, id)
	if err != nil {
		return mapError(err, domainErrors.ErrInUse)
	}
	return expectAffected(tag)
}

func (r *purchaseRepository) GetByID(ctx context.Context, id int64) (*model.Purchase, error) {
	const query = `SELECT ` + purchaseColumns + ` FROM purchases WHERE id=$1`
	p, err := scanPurchase(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err, domainErrors.ErrNotFound)
	}
	return &p, nil
}

func (r *purchaseRepository) Search(ctx context.Context, query, sort string) ([]model.Purchase, error) {
	sql := `SELECT ` + purchaseColumns + ` FROM purchases`
	var args []any
	if q := strings.TrimSpace(query); q != "" {
		sql += ` WHERE title ILIKE $1`
		args = append(args, likePattern(q))
	}
	sql += ` ORDER BY ` + orderBy(sort, purchaseSort, "created_at DESC") + `, id`
	return r.list(ctx, sql, args...)
}

func (r *purchaseRepository) ListOpened(ctx context.Context) ([]model.Purchase, error) {
	const query = `SELECT ` + purchaseColumns + ` FROM purchases
                   WHERE closed_date IS NULL ORDER BY opened_date NULLS LAST, id`
	return r.list(ctx, query)
}

func (r *purchaseRepository) list(ctx context.Context, query string, args ...any) ([]model.Purchase, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
