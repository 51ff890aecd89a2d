package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"consogab-me/db"
	"consogab-me/models"
)

// OrderRepository handles database operations for customer orders
type OrderRepository struct{}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Ensure OrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*OrderRepository)(nil)

// Create inserts an order with its lines. Prices are read from the products
// at creation time; stock is only reserved when the order is confirmed.
func (r *OrderRepository) Create(ctx context.Context, businessID int64, req *models.CreateOrderRequest) (*models.Order, error) {
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("order must contain at least one line")
	}

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	type pricedLine struct {
		productID int64
		qty       int
		unitPrice int64
	}

	var lines []pricedLine
	var total int64
	for _, l := range req.Lines {
		if l.Qty <= 0 {
			return nil, fmt.Errorf("line quantity must be greater than 0")
		}
		var price int64
		var published bool
		err := tx.QueryRowContext(ctx, `
			SELECT price, is_published FROM products WHERE id = $1 AND business_id = $2
		`, l.ProductID, businessID).Scan(&price, &published)
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product %d does not exist", l.ProductID)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read product %d: %w", l.ProductID, err)
		}
		if !published {
			return nil, fmt.Errorf("product %d is not published", l.ProductID)
		}
		lines = append(lines, pricedLine{productID: l.ProductID, qty: l.Qty, unitPrice: price})
		total += price * int64(l.Qty)
	}

	var orderID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (business_id, customer_name, phone, status, total, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id
	`, businessID, req.CustomerName, req.Phone, models.OrderStatusPending, total, req.Notes).Scan(&orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, l := range lines {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_lines (order_id, product_id, qty, unit_price, line_total)
			VALUES ($1, $2, $3, $4, $5)
		`, orderID, l.productID, l.qty, l.unitPrice, l.unitPrice*int64(l.qty))
		if err != nil {
			return nil, fmt.Errorf("failed to insert order line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ OrderRepository.Create: order %d created (business=%d, lines=%d, total=%d)",
		orderID, businessID, len(lines), total)

	return r.GetByID(ctx, orderID, businessID)
}

// GetByID retrieves an order with its lines
func (r *OrderRepository) GetByID(ctx context.Context, id int64, businessID int64) (*models.Order, error) {
	var o models.Order
	err := db.DB.QueryRowContext(ctx, `
		SELECT id, business_id, customer_name, COALESCE(phone, ''), status, total, COALESCE(notes, ''), created_at
		FROM orders
		WHERE id = $1 AND business_id = $2
	`, id, businessID).Scan(&o.ID, &o.BusinessID, &o.CustomerName, &o.Phone, &o.Status, &o.Total, &o.Notes, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %d does not exist", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	rows, err := db.DB.QueryContext(ctx, `
		SELECT ol.id, ol.product_id, p.title, ol.qty, ol.unit_price, ol.line_total
		FROM order_lines ol
		INNER JOIN products p ON ol.product_id = p.id
		WHERE ol.order_id = $1
		ORDER BY ol.id ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l models.OrderLine
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Title, &l.Qty, &l.UnitPrice, &l.LineTotal); err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		o.Lines = append(o.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order lines: %w", err)
	}

	return &o, nil
}

// ListByBusiness retrieves the orders of a business, optionally filtered by
// status
func (r *OrderRepository) ListByBusiness(ctx context.Context, businessID int64, status string) ([]models.Order, error) {
	query := `
		SELECT id, business_id, customer_name, COALESCE(phone, ''), status, total, COALESCE(notes, ''), created_at
		FROM orders
		WHERE business_id = $1`
	args := []any{businessID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.BusinessID, &o.CustomerName, &o.Phone, &o.Status, &o.Total, &o.Notes, &o.CreatedAt); err != nil {
			log.Printf("❌ ListByBusiness: error scanning order: %v", err)
			continue
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}

// Confirm moves a pending order to confirmed and reserves stock for each line.
// Fails when any product lacks available stock; nothing is reserved then.
func (r *OrderRepository) Confirm(ctx context.Context, id int64, businessID int64) (*models.Order, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := r.transitionLocked(ctx, tx, id, businessID, models.OrderStatusPending, models.OrderStatusConfirmed); err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, `SELECT product_id, qty FROM order_lines WHERE order_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	type line struct {
		productID int64
		qty       int
	}
	var lines []line
	for rows.Next() {
		var l line
		if err := rows.Scan(&l.productID, &l.qty); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		lines = append(lines, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order lines: %w", err)
	}

	for _, l := range lines {
		result, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock_reserved = stock_reserved + $1
			WHERE id = $2 AND (stock_total - stock_reserved) >= $1
		`, l.qty, l.productID)
		if err != nil {
			return nil, fmt.Errorf("failed to reserve stock for product %d: %w", l.productID, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to check reservation result: %w", err)
		}
		if affected == 0 {
			return nil, fmt.Errorf("insufficient stock for product %d", l.productID)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ OrderRepository.Confirm: order %d confirmed, stock reserved", id)
	return r.GetByID(ctx, id, businessID)
}

// Cancel cancels an order. A confirmed order releases its reserved stock;
// a pending order just flips status.
func (r *OrderRepository) Cancel(ctx context.Context, id int64, businessID int64) (*models.Order, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var status string
	err = tx.QueryRowContext(ctx, `
		SELECT status FROM orders WHERE id = $1 AND business_id = $2 FOR UPDATE
	`, id, businessID).Scan(&status)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %d does not exist", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read order: %w", err)
	}
	if status == models.OrderStatusDelivered || status == models.OrderStatusCancelled {
		return nil, fmt.Errorf("order %d cannot be cancelled from status %s", id, status)
	}

	if status == models.OrderStatusConfirmed {
		_, err = tx.ExecContext(ctx, `
			UPDATE products p
			SET stock_reserved = stock_reserved - ol.qty
			FROM order_lines ol
			WHERE ol.order_id = $1 AND ol.product_id = p.id
		`, id)
		if err != nil {
			return nil, fmt.Errorf("failed to release reserved stock: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, models.OrderStatusCancelled, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ OrderRepository.Cancel: order %d cancelled (was %s)", id, status)
	return r.GetByID(ctx, id, businessID)
}

// Deliver completes a confirmed order: reserved stock is consumed
func (r *OrderRepository) Deliver(ctx context.Context, id int64, businessID int64) (*models.Order, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := r.transitionLocked(ctx, tx, id, businessID, models.OrderStatusConfirmed, models.OrderStatusDelivered); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE products p
		SET stock_total = stock_total - ol.qty,
		    stock_reserved = stock_reserved - ol.qty
		FROM order_lines ol
		WHERE ol.order_id = $1 AND ol.product_id = p.id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to consume stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ OrderRepository.Deliver: order %d delivered, stock consumed", id)
	return r.GetByID(ctx, id, businessID)
}

// transitionLocked moves an order from one status to another under FOR UPDATE
func (r *OrderRepository) transitionLocked(ctx context.Context, tx *sql.Tx, id, businessID int64, from, to string) error {
	var status string
	err := tx.QueryRowContext(ctx, `
		SELECT status FROM orders WHERE id = $1 AND business_id = $2 FOR UPDATE
	`, id, businessID).Scan(&status)
	if err == sql.ErrNoRows {
		return fmt.Errorf("order %d does not exist", id)
	}
	if err != nil {
		return fmt.Errorf("failed to read order: %w", err)
	}
	if status != from {
		return fmt.Errorf("order %d is %s, expected %s", id, status, from)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, to, id); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}
