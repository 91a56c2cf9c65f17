package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/buyout/internal/domain/errors"
	"github.com/polkiloo/buyout/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const orderSelect = `SELECT o.id, o.title, o.image_path, o.order_price, o.buy_price, o.exchange, o.weight,
       o.track_num, o.url, o.purchase_id, o.customer_id, o.marketplace_id, o.status, o.buyed_at, o.created_at,
       p.title, p.closed_date, p.other_expenses, p.exchange,
       c.name, c.tax,
       m.title, m.url
FROM orders o
JOIN purchases p ON p.id = o.purchase_id
JOIN customers c ON c.id = o.customer_id
LEFT JOIN marketplaces m ON m.id = o.marketplace_id`

var orderSort = map[string]string{
	"id":          "o.id",
	"title":       "o.title",
	"order_price": "o.order_price",
	"buy_price":   "o.buy_price",
	"weight":      "o.weight",
	"status":      "o.status",
	"created_at":  "o.created_at",
	"buyed_at":    "o.buyed_at",
	"customer":    "c.name",
	"customer_id": "o.customer_id",
	"purchase":    "p.title",
	"marketplace": "m.title",
}

func scanOrder(row pgx.Row) (model.Order, error) {
	var (
		o            model.Order
		p            model.Purchase
		c            model.Customer
		mTitle, mURL *string
	)
	err := row.Scan(&o.ID, &o.Title, &o.ImagePath, &o.OrderPrice, &o.BuyPrice, &o.Exchange, &o.Weight,
		&o.TrackNumber, &o.URL, &o.PurchaseID, &o.CustomerID, &o.MarketplaceID, &o.Status, &o.BuyedAt, &o.CreatedAt,
		&p.Title, &p.ClosedDate, &p.OtherExpenses, &p.Exchange,
		&c.Name, &c.Tax,
		&mTitle, &mURL)
	if err != nil {
		return o, err
	}

	p.ID = o.PurchaseID
	c.ID = o.CustomerID
	o.Purchase = &p
	o.Customer = &c
	if o.MarketplaceID != nil {
		o.Marketplace = &model.Marketplace{ID: *o.MarketplaceID, Title: deref(mTitle), URL: deref(mURL)}
	}
	return o, nil
}

// whereOrders renders filter into a WHERE clause over the "o" alias.
func whereOrders(f model.OrderFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q := strings.TrimSpace(f.Query); q != "" {
		text := arg(likePattern(q))
		price := arg(likePattern(strings.ReplaceAll(q, ",", ".")))
		conds = append(conds, fmt.Sprintf(
			"(o.title ILIKE %[1]s OR o.track_num ILIKE %[1]s OR o.order_price::text ILIKE %[2]s OR o.buy_price::text ILIKE %[2]s)",
			text, price))
	}
	if f.CustomerID != nil {
		conds = append(conds, "o.customer_id = "+arg(*f.CustomerID))
	}
	if f.MarketplaceID != nil {
		conds = append(conds, "o.marketplace_id = "+arg(*f.MarketplaceID))
	}
	if f.PurchaseID != nil {
		conds = append(conds, "o.purchase_id = "+arg(*f.PurchaseID))
	}
	if f.Status != nil {
		conds = append(conds, "o.status = "+arg(*f.Status))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	const query = `INSERT INTO orders (title, image_path, order_price, buy_price, exchange, weight, track_num, url,
                       purchase_id, customer_id, marketplace_id, status, buyed_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query, o.Title, o.ImagePath, o.OrderPrice, o.BuyPrice, o.Exchange, o.Weight,
		o.TrackNumber, o.URL, o.PurchaseID, o.CustomerID, o.MarketplaceID, o.Status, o.BuyedAt).Scan(&o.ID, &o.CreatedAt)
	return mapError(err, domainErrors.ErrNotFound)
}

func (r *orderRepository) Update(ctx context.Context, o *model.Order) error {
	const query = `UPDATE orders SET title=$1, image_path=$2, order_price=$3, buy_price=$4, exchange=$5, weight=$6,
                       track_num=$7, url=$8, purchase_id=$9, customer_id=$10, marketplace_id=$11, status=$12, buyed_at=$13
                   WHERE id=$14`
	tag, err := r.storage.pool.Exec(ctx, query, o.Title, o.ImagePath, o.OrderPrice, o.BuyPrice, o.Exchange, o.Weight,
		o.TrackNumber, o.URL, o.PurchaseID, o.CustomerID, o.MarketplaceID, o.Status, o.BuyedAt, o.ID)
	if err != nil {
		return mapError(err, domainErrors.ErrNotFound)
	}
	return expectAffected(tag)
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return mapError(err, domainErrors.ErrInUse)
	}
	return expectAffected(tag)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	o, err := scanOrder(r.storage.pool.QueryRow(ctx, orderSelect+` WHERE o.id=$1`, id))
	if err != nil {
		return nil, mapError(err, domainErrors.ErrNotFound)
	}
	return &o, nil
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	where, args := whereOrders(filter)
	query := orderSelect + where + ` ORDER BY ` + orderBy(filter.Sort, orderSort, "o.created_at DESC") + `, o.id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return r.list(ctx, query, args...)
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64, purchaseID *int64) ([]model.Order, error) {
	return r.List(ctx, model.OrderFilter{CustomerID: &customerID, PurchaseID: purchaseID, Sort: "purchase"})
}

func (r *orderRepository) TrackSiblings(ctx context.Context, order *model.Order) ([]model.Order, error) {
	if order.Track() == "" {
		return nil, nil
	}
	const where = ` WHERE o.purchase_id=$1 AND o.track_num=$2 AND o.id<>$3 ORDER BY o.created_at, o.id`
	return r.list(ctx, orderSelect+where, order.PurchaseID, order.Track(), order.ID)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, fields model.OrderFields) error {
	sets := []string{"status=$1"}
	args := []any{status}
	set := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}
	if fields.BuyPrice != nil {
		set("buy_price", *fields.BuyPrice)
	}
	if fields.Exchange != nil {
		set("exchange", *fields.Exchange)
	}
	if fields.TrackNumber != nil {
		set("track_num", *fields.TrackNumber)
	}
	if fields.Weight != nil {
		set("weight", *fields.Weight)
	}
	if fields.BuyedAt != nil {
		set("buyed_at", *fields.BuyedAt)
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE orders SET %s WHERE id=$%d", strings.Join(sets, ", "), len(args))

	tag, err := r.storage.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	return expectAffected(tag)
}

func (r *orderRepository) MarkArrived(ctx context.Context, id int64, weight int, siblingIDs []int64) (int64, error) {
	var updated int64
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const updateOrder = `UPDATE orders SET status=$1, weight=$2 WHERE id=$3`
		tag, err := tx.Exec(ctx, updateOrder, model.OrderStatusArrived, weight, id)
		if err != nil {
			return err
		}
		if err := expectAffected(tag); err != nil {
			return err
		}

		if len(siblingIDs) == 0 {
			return nil
		}
		const updateSiblings = `UPDATE orders s SET status=$1, weight=0
                   FROM orders o
                   WHERE o.id=$2 AND s.id = ANY($3) AND s.id <> o.id
                     AND s.purchase_id = o.purchase_id AND s.track_num = o.track_num
                     AND s.status <> $4`
		tag, err = tx.Exec(ctx, updateSiblings, model.OrderStatusArrived, id, siblingIDs, model.OrderStatusCancelled)
		if err != nil {
			return err
		}
		updated = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func (r *orderRepository) StatusSummary(ctx context.Context, filter model.OrderFilter) ([]model.StatusCount, error) {
	where, args := whereOrders(filter)
	query := `SELECT o.status, COUNT(*) FROM orders o` + where + ` GROUP BY o.status ORDER BY o.status`
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.StatusCount
	for rows.Next() {
		var sc model.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Total); err != nil {
			return nil, err
		}
		result = append(result, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
