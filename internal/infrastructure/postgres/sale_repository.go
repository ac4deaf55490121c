package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL.
// Necesita el pool (no un Querier) porque Create inserta cabecera y líneas
// dentro de una transacción propia.
type SaleRepo struct {
	pool *pgxpool.Pool
}

// NewSaleRepository construye el adaptador con el pool.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// Create persiste la venta y sus líneas en una transacción. Solo la venta
// es atómica: los ajustes de stock y acumulado van por fuera (flujo de
// venta no transaccional).
func (r *SaleRepo) Create(sale *entity.Sale) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO sales (customer_id, total, date)
		VALUES ($1, $2, $3)
		RETURNING id`,
		sale.CustomerID, sale.Total, sale.Date,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	for i, it := range sale.Items {
		_, err := tx.Exec(ctx, `
			INSERT INTO sale_items (sale_id, position, product_id, quantity, price)
			VALUES ($1, $2, $3, $4, $5)`,
			sale.ID, i, it.ProductID, it.Quantity, it.Price,
		)
		if err != nil {
			return fmt.Errorf("insert sale item %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una venta con sus líneas. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	var s entity.Sale
	err := r.pool.QueryRow(context.Background(), `
		SELECT id, customer_id, total, date FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.CustomerID, &s.Total, &s.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.itemsFor([]int64{s.ID})
	if err != nil {
		return nil, err
	}
	s.Items = items[s.ID]
	return &s, nil
}

// List lista todas las ventas con sus líneas, ordenadas por ID.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	return r.listWhere(`ORDER BY id`)
}

// ListByCustomer lista las ventas del cliente indicado.
func (r *SaleRepo) ListByCustomer(customerID int64) ([]*entity.Sale, error) {
	return r.listWhere(`WHERE customer_id = $1 ORDER BY id`, customerID)
}

// ListByDateRange lista las ventas con from <= date < to.
func (r *SaleRepo) ListByDateRange(from, to time.Time) ([]*entity.Sale, error) {
	return r.listWhere(`WHERE date >= $1 AND date < $2 ORDER BY id`, from, to)
}

// Delete elimina la venta; las líneas caen por ON DELETE CASCADE.
func (r *SaleRepo) Delete(id int64) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleRepo) listWhere(clause string, args ...any) ([]*entity.Sale, error) {
	query := `SELECT id, customer_id, total, date FROM sales ` + clause
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	var ids []int64
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.Total, &s.Date); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	items, err := r.itemsFor(ids)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		s.Items = items[s.ID]
	}
	return list, nil
}

// itemsFor carga las líneas de las ventas indicadas en una sola consulta,
// preservando el orden de captura (columna position).
func (r *SaleRepo) itemsFor(saleIDs []int64) (map[int64][]entity.SaleItem, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT sale_id, product_id, quantity, price
		FROM sale_items WHERE sale_id = ANY($1)
		ORDER BY sale_id, position`, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	items := make(map[int64][]entity.SaleItem)
	for rows.Next() {
		var saleID int64
		var it entity.SaleItem
		if err := rows.Scan(&saleID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items[saleID] = append(items[saleID], it)
	}
	return items, rows.Err()
}
