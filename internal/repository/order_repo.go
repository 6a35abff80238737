package repository

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/caribtel/storefront-api/internal/models"
)

// OrderRepository handles data access for placed orders.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts an order and its item snapshots in a single transaction.
func (r *OrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const orderQ = `
        INSERT INTO orders (order_number, customer_name, customer_email, customer_phone,
                            street, city, region, order_type, payment_method, payment_status,
                            charge_id, loan_id, loan_status, total, currency_code)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id, created_at, updated_at`

	err = tx.QueryRowx(orderQ,
		order.OrderNumber,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		order.Street,
		order.City,
		order.Region,
		order.OrderType,
		order.PaymentMethod,
		order.PaymentStatus,
		order.ChargeID,
		order.LoanID,
		order.LoanStatus,
		order.Total,
		order.CurrencyCode,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	const itemQ = `
        INSERT INTO order_items (order_id, product_id, variant_id, plan_id, item_type,
                                 title, price, plan_price, quantity)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	for i := range items {
		items[i].OrderID = order.ID
		_, err = tx.Exec(itemQ,
			items[i].OrderID,
			items[i].ProductID,
			items[i].VariantID,
			items[i].PlanID,
			items[i].ItemType,
			items[i].Title,
			items[i].Price,
			items[i].PlanPrice,
			items[i].Quantity,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByOrderNumber returns an order with its items.
// Returns sql.ErrNoRows when no such order exists.
func (r *OrderRepository) GetByOrderNumber(orderNumber string) (*models.Order, []models.OrderItem, error) {
	const q = `SELECT * FROM orders WHERE order_number = $1 LIMIT 1`

	var order models.Order
	if err := r.db.Get(&order, q, orderNumber); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, sql.ErrNoRows
		}
		return nil, nil, err
	}

	const itemsQ = `SELECT * FROM order_items WHERE order_id = $1 ORDER BY id`
	var items []models.OrderItem
	if err := r.db.Select(&items, itemsQ, order.ID); err != nil {
		return nil, nil, err
	}
	return &order, items, nil
}

// UpdatePaymentStatus sets the payment status of an order.
func (r *OrderRepository) UpdatePaymentStatus(id int, status models.PaymentStatus) error {
	const q = `UPDATE orders SET payment_status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(q, id, status)
	return err
}

// UpdateLoanStatus sets the loan status on an order looked up by loan id.
// Returns sql.ErrNoRows when no order carries that loan.
func (r *OrderRepository) UpdateLoanStatus(loanID, loanStatus string, paymentStatus models.PaymentStatus) error {
	const q = `
        UPDATE orders SET loan_status = $2, payment_status = $3, updated_at = NOW()
        WHERE loan_id = $1`
	res, err := r.db.Exec(q, loanID, loanStatus, paymentStatus)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetStaleProcessing returns card orders stuck in processing for longer than
// staleAfter, capped at maxAge so abandoned charges eventually get timed out
// by the worker instead of being polled forever.
func (r *OrderRepository) GetStaleProcessing(staleAfter time.Duration) ([]models.Order, error) {
	const q = `
        SELECT * FROM orders
        WHERE payment_method = 'card'
          AND payment_status = 'processing'
          AND charge_id IS NOT NULL
          AND updated_at < NOW() - make_interval(secs => $1)
        ORDER BY updated_at
        LIMIT 50`

	var orders []models.Order
	if err := r.db.Select(&orders, q, int(staleAfter.Seconds())); err != nil {
		return nil, err
	}
	return orders, nil
}
