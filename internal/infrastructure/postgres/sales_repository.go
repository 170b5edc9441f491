package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo persistencia de ventas. Las ventas son de solo inserción:
// no hay Update ni Delete, el historial alimenta los reportes.
type SalesRepo struct {
	q Querier
}

func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

func (r *SalesRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (payment_method, total_amount, store_id, product_id, staff_id, date_of_sale, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		sale.PaymentMethod, sale.TotalAmount, sale.StoreID, sale.ProductID,
		sale.StaffID, sale.DateOfSale, sale.CreatedAt,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *SalesRepo) GetByID(id int64) (*entity.Sale, error) {
	query := `
		SELECT id, payment_method, total_amount, store_id, product_id, staff_id, date_of_sale, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.PaymentMethod, &s.TotalAmount, &s.StoreID, &s.ProductID,
		&s.StaffID, &s.DateOfSale, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List lista ventas paginadas, opcionalmente acotadas por rango de fechas
// (start inclusivo, end exclusivo). Nil desactiva el límite correspondiente.
func (r *SalesRepo) List(start, end *time.Time, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, payment_method, total_amount, store_id, product_id, staff_id, date_of_sale, created_at
		FROM sales
		WHERE ($1::timestamptz IS NULL OR date_of_sale >= $1)
		  AND ($2::timestamptz IS NULL OR date_of_sale < $2)
		ORDER BY date_of_sale DESC, id DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, start, end, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.PaymentMethod, &s.TotalAmount, &s.StoreID, &s.ProductID,
			&s.StaffID, &s.DateOfSale, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
