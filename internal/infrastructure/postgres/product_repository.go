package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto; el ID lo asigna la secuencia.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, price, stock, low_stock_threshold, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Price, product.Stock, product.LowStockThreshold, product.CreatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, price, stock, low_stock_threshold, created_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Stock, &p.LowStockThreshold, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista todos los productos ordenados por ID.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.listWhere(``)
}

// ListLowStock devuelve los productos con stock <= low_stock_threshold.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	return r.listWhere(`WHERE stock <= low_stock_threshold`)
}

func (r *ProductRepo) listWhere(where string) ([]*entity.Product, error) {
	query := fmt.Sprintf(`
		SELECT id, name, price, stock, low_stock_threshold, created_at
		FROM products %s ORDER BY id`, where)
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.LowStockThreshold, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, price = $3, stock = $4, low_stock_threshold = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Stock, product.LowStockThreshold,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustStock descuenta delta con piso en 0 en un solo UPDATE atómico y
// devuelve el producto actualizado.
func (r *ProductRepo) AdjustStock(id int64, delta int) (*entity.Product, error) {
	query := `
		UPDATE products SET stock = GREATEST(0, stock - $2)
		WHERE id = $1
		RETURNING id, name, price, stock, low_stock_threshold, created_at`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id, delta).Scan(
		&p.ID, &p.Name, &p.Price, &p.Stock, &p.LowStockThreshold, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("adjust stock: %w", err)
	}
	return &p, nil
}
