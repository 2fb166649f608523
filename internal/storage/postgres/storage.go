package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/mireles/storefront/internal/domain/errors"
	"github.com/mireles/storefront/internal/domain/model"
	"github.com/mireles/storefront/internal/domain/repository"
)

// dbPool is the subset of pgxpool.Pool the storage relies on. Tests inject
// a pgxmock pool through it.
type dbPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   dbPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type categoryRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type stockAlertRepository struct {
	storage *Storage
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (dbPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Categories() repository.CategoryRepository {
	return &categoryRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) StockAlerts() repository.StockAlertRepository {
	return &stockAlertRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id UUID PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            phone TEXT NOT NULL DEFAULT '',
            image TEXT NOT NULL DEFAULT '',
            is_admin BOOLEAN NOT NULL DEFAULT FALSE,
            delivery_address1 TEXT NOT NULL DEFAULT '',
            delivery_address2 TEXT NOT NULL DEFAULT '',
            delivery_city TEXT NOT NULL DEFAULT '',
            delivery_zip TEXT NOT NULL DEFAULT '',
            delivery_country TEXT NOT NULL DEFAULT '',
            delivery_lat DOUBLE PRECISION,
            delivery_lng DOUBLE PRECISION,
            push_token TEXT NOT NULL DEFAULT '',
            push_token_type TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS categories (
            id UUID PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            color TEXT NOT NULL DEFAULT '',
            icon TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id UUID PRIMARY KEY,
            name TEXT NOT NULL,
            brand TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            rich_description TEXT NOT NULL DEFAULT '',
            image TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL DEFAULT 0,
            category_id UUID NOT NULL REFERENCES categories(id),
            count_in_stock INTEGER NOT NULL DEFAULT 0,
            rating DOUBLE PRECISION NOT NULL DEFAULT 0,
            num_reviews INTEGER NOT NULL DEFAULT 0,
            is_featured BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS stock_alerts (
            id UUID PRIMARY KEY,
            product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
            type TEXT NOT NULL,
            threshold INTEGER NOT NULL,
            count_in_stock INTEGER NOT NULL,
            resolved BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id UUID PRIMARY KEY,
            user_id UUID NOT NULL REFERENCES users(id),
            status TEXT NOT NULL,
            total_price DOUBLE PRECISION NOT NULL DEFAULT 0,
            shipping_address1 TEXT NOT NULL DEFAULT '',
            shipping_address2 TEXT NOT NULL DEFAULT '',
            city TEXT NOT NULL DEFAULT '',
            zip TEXT NOT NULL DEFAULT '',
            country TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            date_ordered TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id UUID PRIMARY KEY,
            order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            product_id UUID NOT NULL,
            name TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            image TEXT NOT NULL DEFAULT '',
            quantity INTEGER NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, date_ordered DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_alerts_product ON stock_alerts(product_id) WHERE NOT resolved`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const userColumns = `id, name, email, password_hash, phone, image, is_admin,
       delivery_address1, delivery_address2, delivery_city, delivery_zip, delivery_country,
       delivery_lat, delivery_lng, push_token, push_token_type, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Image, &u.IsAdmin,
		&u.DeliveryAddress1, &u.DeliveryAddress2, &u.DeliveryCity, &u.DeliveryZip, &u.DeliveryCountry,
		&u.DeliveryLat, &u.DeliveryLng, &u.PushToken, &u.PushTokenType, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	const query = `INSERT INTO users (id, name, email, password_hash, phone, is_admin)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Phone, user.IsAdmin).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (*model.User, error) {
	query := `UPDATE users SET
                  name = COALESCE($2, name),
                  phone = COALESCE($3, phone),
                  delivery_address1 = COALESCE($4, delivery_address1),
                  delivery_address2 = COALESCE($5, delivery_address2),
                  delivery_city = COALESCE($6, delivery_city),
                  delivery_zip = COALESCE($7, delivery_zip),
                  delivery_country = COALESCE($8, delivery_country),
                  delivery_lat = COALESCE($9, delivery_lat),
                  delivery_lng = COALESCE($10, delivery_lng)
              WHERE id=$1
              RETURNING ` + userColumns
	return scanUser(r.storage.pool.QueryRow(ctx, query, id,
		update.Name, update.Phone,
		update.DeliveryAddress1, update.DeliveryAddress2, update.DeliveryCity,
		update.DeliveryZip, update.DeliveryCountry,
		update.DeliveryLat, update.DeliveryLng))
}

func (r *userRepository) SetPushToken(ctx context.Context, id uuid.UUID, token, tokenType string) error {
	const query = `UPDATE users SET push_token=$2, push_token_type=$3 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, token, tokenType)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) AdminRecipients(ctx context.Context) ([]model.PushRecipient, error) {
	const query = `SELECT push_token, push_token_type FROM users WHERE is_admin AND push_token <> ''`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PushRecipient
	for rows.Next() {
		var rec model.PushRecipient
		if err := rows.Scan(&rec.Token, &rec.Type); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	const query = `INSERT INTO categories (id, name, color, icon) VALUES ($1, $2, $3, $4)`
	if _, err := r.storage.pool.Exec(ctx, query, category.ID, category.Name, category.Color, category.Icon); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return category, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	const query = `SELECT id, name, color, icon FROM categories WHERE id=$1`
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Color, &c.Icon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, name, color, icon FROM categories ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Icon); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	const query = `UPDATE categories SET name=$2, color=$3, icon=$4 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, category.ID, category.Name, category.Color, category.Icon)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return category, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ProductRepository implementation ---

const productColumns = `id, name, brand, description, rich_description, image, price,
       category_id, count_in_stock, rating, num_reviews, is_featured, created_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Brand, &p.Description, &p.RichDescription, &p.Image, &p.Price,
		&p.CategoryID, &p.CountInStock, &p.Rating, &p.NumReviews, &p.IsFeatured, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	const query = `INSERT INTO products
                   (id, name, brand, description, rich_description, image, price, category_id,
                    count_in_stock, rating, num_reviews, is_featured)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
                   RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Brand, product.Description, product.RichDescription,
		product.Image, product.Price, product.CategoryID, product.CountInStock,
		product.Rating, product.NumReviews, product.IsFeatured).Scan(&product.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, domainErrors.ErrAlreadyExists
			case "23503":
				return nil, domainErrors.ErrInvalidInput
			}
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Description, &p.RichDescription, &p.Image, &p.Price,
			&p.CategoryID, &p.CountInStock, &p.Rating, &p.NumReviews, &p.IsFeatured, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `UPDATE products SET
                       name=$2, brand=$3, description=$4, rich_description=$5, image=$6, price=$7,
                       category_id=$8, count_in_stock=$9, rating=$10, num_reviews=$11, is_featured=$12
                   WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query,
		product.ID, product.Name, product.Brand, product.Description, product.RichDescription,
		product.Image, product.Price, product.CategoryID, product.CountInStock,
		product.Rating, product.NumReviews, product.IsFeatured)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domainErrors.ErrInvalidInput
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return product, nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, user_id, status, total_price, shipping_address1, shipping_address2,
       city, zip, country, phone, date_ordered`

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders
                             (id, user_id, status, total_price, shipping_address1, shipping_address2,
                              city, zip, country, phone)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                             RETURNING date_ordered`
		if err := tx.QueryRow(ctx, insertOrder,
			order.ID, order.UserID, order.Status, order.TotalPrice,
			order.ShippingAddress1, order.ShippingAddress2,
			order.City, order.Zip, order.Country, order.Phone).Scan(&order.DateOrdered); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (id, order_id, product_id, name, price, image, quantity)
                            VALUES ($1, $2, $3, $4, $5, $6, $7)`
		for i := range order.Items {
			item := &order.Items[i]
			if item.ID == uuid.Nil {
				item.ID = uuid.New()
			}
			if _, err := tx.Exec(ctx, insertItem,
				item.ID, order.ID, item.ProductID, item.Name, item.Price, item.Image, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.UserID, &o.Status, &o.TotalPrice, &o.ShippingAddress1, &o.ShippingAddress2,
		&o.City, &o.Zip, &o.Country, &o.Phone, &o.DateOrdered)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, []uuid.UUID{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY date_ordered DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return r.collectOrders(ctx, rows)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY date_ordered DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.collectOrders(ctx, rows)
}

func (r *orderRepository) collectOrders(ctx context.Context, rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	var result []model.Order
	var ids []uuid.UUID
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalPrice,
			&o.ShippingAddress1, &o.ShippingAddress2,
			&o.City, &o.Zip, &o.Country, &o.Phone, &o.DateOrdered); err != nil {
			return nil, err
		}
		result = append(result, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Items = items[result[i].ID]
	}
	return result, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]model.OrderItem, error) {
	const query = `SELECT id, order_id, product_id, name, price, image, quantity
                   FROM order_items WHERE order_id = ANY($1) ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[uuid.UUID][]model.OrderItem)
	for rows.Next() {
		var item model.OrderItem
		var orderID uuid.UUID
		if err := rows.Scan(&item.ID, &orderID, &item.ProductID, &item.Name, &item.Price, &item.Image, &item.Quantity); err != nil {
			return nil, err
		}
		items[orderID] = append(items[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE orders SET status=$2 WHERE id=$1`, id, status)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// --- StockAlertRepository implementation ---

const alertColumns = `id, product_id, type, threshold, count_in_stock, resolved, created_at, updated_at`

func (r *stockAlertRepository) UnresolvedByProduct(ctx context.Context, productID uuid.UUID) ([]model.StockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM stock_alerts WHERE product_id=$1 AND NOT resolved`
	rows, err := r.storage.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	return collectAlerts(rows)
}

func (r *stockAlertRepository) ResolveByTypes(ctx context.Context, productID uuid.UUID, types ...model.AlertType) error {
	if len(types) == 0 {
		return nil
	}
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	const query = `UPDATE stock_alerts SET resolved=TRUE, updated_at=NOW()
                   WHERE product_id=$1 AND NOT resolved AND type = ANY($2)`
	_, err := r.storage.pool.Exec(ctx, query, productID, names)
	return err
}

func (r *stockAlertRepository) Create(ctx context.Context, alert *model.StockAlert) (*model.StockAlert, error) {
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	const query = `INSERT INTO stock_alerts (id, product_id, type, threshold, count_in_stock)
                   VALUES ($1, $2, $3, $4, $5) RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		alert.ID, alert.ProductID, alert.Type, alert.Threshold, alert.CountInStock).
		Scan(&alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

func (r *stockAlertRepository) UpdateCount(ctx context.Context, alertID uuid.UUID, countInStock int) error {
	const query = `UPDATE stock_alerts SET count_in_stock=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, alertID, countInStock)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *stockAlertRepository) List(ctx context.Context, includeResolved bool) ([]model.StockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM stock_alerts WHERE NOT resolved ORDER BY created_at DESC`
	if includeResolved {
		query = `SELECT ` + alertColumns + ` FROM stock_alerts ORDER BY created_at DESC`
	}
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectAlerts(rows)
}

func collectAlerts(rows pgx.Rows) ([]model.StockAlert, error) {
	defer rows.Close()

	var result []model.StockAlert
	for rows.Next() {
		var a model.StockAlert
		if err := rows.Scan(&a.ID, &a.ProductID, &a.Type, &a.Threshold, &a.CountInStock,
			&a.Resolved, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Pool exposes the underlying connection pool for advanced use.
func (s *Storage) Pool() dbPool {
	return s.pool
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
