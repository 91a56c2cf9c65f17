package postgres

import (
	"context"

	domainErrors "github.com/polkiloo/buyout/internal/domain/errors"
	"github.com/polkiloo/buyout/internal/domain/model"
)

type marketplaceRepository struct {
	storage *Storage
}

// nullable stores empty strings as NULL so unique constraints ignore them.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *marketplaceRepository) Create(ctx context.Context, m *model.Marketplace) error {
	const query = `INSERT INTO marketplaces (title, url) VALUES ($1, $2) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, m.Title, nullable(m.URL)).Scan(&m.ID)
	return mapError(err, domainErrors.ErrNotFound)
}

func (r *marketplaceRepository) Update(ctx context.Context, m *model.Marketplace) error {
	const query = `UPDATE marketplaces SET title=$1, url=$2 WHERE id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, m.Title, nullable(m.URL), m.ID)
	if err != nil {
		return mapError(err, domainErrors.ErrNotFound)
	}
	return expectAffected(tag)
}

func (r *marketplaceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM marketplaces WHERE id=$1`, id)
	if err != nil {
		return mapError(err, domainErrors.ErrInUse)
	}
	return expectAffected(tag)
}

func (r *marketplaceRepository) GetByID(ctx context.Context, id int64) (*model.Marketplace, error) {
	const query = `SELECT id, title, url FROM marketplaces WHERE id=$1`
	var (
		m   model.Marketplace
		url *string
	)
	if err := r.storage.pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.Title, &url); err != nil {
		return nil, mapError(err, domainErrors.ErrNotFound)
	}
	m.URL = deref(url)
	return &m, nil
}

func (r *marketplaceRepository) List(ctx context.Context) ([]model.Marketplace, error) {
	const query = `SELECT id, title, url FROM marketplaces ORDER BY title, id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Marketplace
	for rows.Next() {
		var (
			m   model.Marketplace
			url *string
		)
		if err := rows.Scan(&m.ID, &m.Title, &url); err != nil {
			return nil, err
		}
		m.URL = deref(url)
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
