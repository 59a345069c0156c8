package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgres struct{ db *sql.DB }

// NewPostgresRepository creates a Repository backed by the inventory_items table.
func NewPostgresRepository(db *sql.DB) Repository { return &postgres{db: db} }

func (r *postgres) ListAll(ctx context.Context) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,name,quantity,price,category,supplier
		FROM inventory_items ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Quantity, &it.Price, &it.Category, &it.Supplier); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (r *postgres) GetByID(ctx context.Context, id int64) (*Item, error) {
	it := &Item{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id,name,quantity,price,category,supplier
		FROM inventory_items WHERE id=$1`, id).
		Scan(&it.ID, &it.Name, &it.Quantity, &it.Price, &it.Category, &it.Supplier)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return it, nil
}

func (r *postgres) Create(ctx context.Context, item *Item) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO inventory_items (name,quantity,price,category,supplier)
		VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		item.Name, item.Quantity, item.Price, item.Category, item.Supplier).
		Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

func (r *postgres) Update(ctx context.Context, id int64, item *Item) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE inventory_items
		SET name=$1, quantity=$2, price=$3, category=$4, supplier=$5
		WHERE id=$6`,
		item.Name, item.Quantity, item.Price, item.Category, item.Supplier, id)
	if err != nil {
		return fmt.Errorf("update item %d: %w", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgres) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
