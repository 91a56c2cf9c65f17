package postgres

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/buyout/internal/domain/errors"
	"github.com/polkiloo/buyout/internal/domain/model"
)

type customerRepository struct {
	storage *Storage
}

const customerColumns = `id, name, phone, telegram_id, tax, created_at`

var customerSort = map[string]string{
	"id":         "id",
	"name":       "name",
	"tax":        "tax",
	"created_at": "created_at",
}

func (r *customerRepository) Create(ctx context.Context, c *model.Customer) error {
	const query = `INSERT INTO customers (name, phone, telegram_id, tax)
                   VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query, c.Name, c.Phone, c.TelegramID, c.Tax).Scan(&c.ID, &c.CreatedAt)
	return mapError(err, domainErrors.ErrNotFound)
}

func (r *customerRepository) Update(ctx context.Context, c *model.Customer) error {
	const query = `UPDATE customers SET name=$1, phone=$2, telegram_id=$3, tax=$4 WHERE id=$5`
	tag, err := r.storage.pool.Exec(ctx, query, c.Name, c.Phone, c.TelegramID, c.Tax, c.ID)
	if err != nil {
		return mapError(err, domainErrors.ErrNotFound)
	}
	return expectAffected(tag)
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return mapError(err, domainErrors.ErrInUse)
	}
	return expectAffected(tag)
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers WHERE id=$1`
	var c model.Customer
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone, &c.TelegramID, &c.Tax, &c.CreatedAt)
	if err != nil {
		return nil, mapError(err, domainErrors.ErrNotFound)
	}
	return &c, nil
}

func (r *customerRepository) Search(ctx context.Context, query, sort string) ([]model.Customer, error) {
	sql := `SELECT ` + customerColumns + ` FROM customers`
	var args []any
	if q := strings.TrimSpace(query); q != "" {
		sql += ` WHERE name ILIKE $1 OR phone ILIKE $1 OR telegram_id ILIKE $1`
		args = append(args, likePattern(q))
	}
	sql += ` ORDER BY ` + orderBy(sort, customerSort, "created_at DESC") + `, id`

	rows, err := r.storage.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.TelegramID, &c.Tax, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
