package importing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"logistics-seed-service/internal/domain"
)

// PostgresImporter writes a dataset directly into a Postgres database.
// Same contract as SQLiteImporter, with Postgres placeholder and upsert
// syntax.
type PostgresImporter struct {
	DB        *sql.DB
	MaxOrders int
}

func NewPostgresImporter(db *sql.DB, maxOrders int) *PostgresImporter {
	return &PostgresImporter{DB: db, MaxOrders: maxOrders}
}

// Initialize the Postgres import schema.
func (p *PostgresImporter) InitSchema(ctx context.Context) error {
	if p.DB == nil {
		return errors.New("postgres importer: DB is nil")
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS agents (
			id INTEGER PRIMARY KEY,
			username TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			full_name TEXT NOT NULL,
			role TEXT NOT NULL,
			status TEXT NOT NULL,
			home_base TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			license_number TEXT NOT NULL,
			vehicle_type TEXT NOT NULL,
			max_capacity INTEGER NOT NULL,
			availability TEXT NOT NULL,
			rating DOUBLE PRECISION NOT NULL,
			join_date TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS stores (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			address TEXT NOT NULL,
			city TEXT NOT NULL,
			country TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			capacity INTEGER NOT NULL,
			manager TEXT NOT NULL,
			contact TEXT NOT NULL,
			email TEXT NOT NULL,
			operating_hours TEXT NOT NULL,
			is_active BOOLEAN NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS customers (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			address TEXT NOT NULL,
			city TEXT NOT NULL,
			country TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			customer_since TEXT NOT NULL,
			type TEXT NOT NULL,
			priority_level TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS orders (
			id INTEGER PRIMARY KEY,
			uuid TEXT NOT NULL,
			customer_id INTEGER NOT NULL,
			store_id INTEGER NOT NULL,
			status TEXT NOT NULL,
			priority TEXT NOT NULL,
			order_date TEXT NOT NULL,
			expected_delivery_date TEXT NOT NULL,
			items INTEGER NOT NULL,
			total_weight DOUBLE PRECISION NOT NULL,
			value DOUBLE PRECISION NOT NULL,
			currency TEXT NOT NULL,
			pickup_latitude DOUBLE PRECISION NOT NULL,
			pickup_longitude DOUBLE PRECISION NOT NULL,
			delivery_latitude DOUBLE PRECISION NOT NULL,
			delivery_longitude DOUBLE PRECISION NOT NULL,
			cluster_id INTEGER,
			driver_id INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS clusters (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			radius DOUBLE PRECISION NOT NULL,
			order_count INTEGER NOT NULL,
			status TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_orders_cluster_id ON orders(cluster_id);`,
		`CREATE INDEX IF NOT EXISTS idx_orders_driver_id ON orders(driver_id);`,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

func (p *PostgresImporter) Import(ctx context.Context, ds *domain.Dataset) error {
	if p.DB == nil {
		return errors.New("postgres importer: DB is nil")
	}

	if err := p.InitSchema(ctx); err != nil {
		return fmt.Errorf("postgres import: %w", err)
	}

	orders := ds.Orders
	if p.MaxOrders > 0 && len(orders) > p.MaxOrders {
		orders = orders[:p.MaxOrders]
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres import: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertAgentsPostgres(ctx, tx, ds.Agents); err != nil {
		return fmt.Errorf("postgres import: %w", err)
	}
	if err := insertStoresPostgres(ctx, tx, ds.Stores); err != nil {
		return fmt.Errorf("postgres import: %w", err)
	}
	if err := insertCustomersPostgres(ctx, tx, ds.Customers); err != nil {
		return fmt.Errorf("postgres import: %w", err)
	}
	if err := insertClustersPostgres(ctx, tx, ds.Clusters); err != nil {
		return fmt.Errorf("postgres import: %w", err)
	}
	if err := insertOrdersPostgres(ctx, tx, orders); err != nil {
		return fmt.Errorf("postgres import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres import: commit tx: %w", err)
	}

	log.Printf(
		"postgres import complete agents=%d stores=%d customers=%d clusters=%d orders=%d",
		len(ds.Agents), len(ds.Stores), len(ds.Customers), len(ds.Clusters), len(orders),
	)
	return nil
}

func insertAgentsPostgres(ctx context.Context, tx *sql.Tx, agents []domain.Agent) error {
	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO agents (
		id, username, email, phone, full_name, role, status, home_base,
		latitude, longitude, license_number, vehicle_type, max_capacity,
		availability, rating, join_date
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	ON CONFLICT (id) DO UPDATE SET
		username = EXCLUDED.username,
		email = EXCLUDED.email,
		status = EXCLUDED.status,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude;
	`)
	if err != nil {
		return fmt.Errorf("prepare agents insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range agents {
		if _, err := stmt.ExecContext(ctx,
			a.ID, a.Username, a.Email, a.Phone, a.FullName, a.Role, a.Status, a.HomeBase,
			a.Latitude, a.Longitude, a.LicenseNumber, a.VehicleType, a.MaxCapacity,
			a.Availability, a.Rating, a.JoinDate,
		); err != nil {
			return fmt.Errorf("insert agent id=%d: %w", a.ID, err)
		}
	}
	return nil
}

func insertStoresPostgres(ctx context.Context, tx *sql.Tx, stores []domain.Store) error {
	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO stores (
		id, name, type, address, city, country, latitude, longitude,
		capacity, manager, contact, email, operating_hours, is_active
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		is_active = EXCLUDED.is_active;
	`)
	if err != nil {
		return fmt.Errorf("prepare stores insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range stores {
		if _, err := stmt.ExecContext(ctx,
			s.ID, s.Name, s.Type, s.Address, s.City, s.Country, s.Latitude, s.Longitude,
			s.Capacity, s.Manager, s.Contact, s.Email, s.OperatingHours, s.IsActive,
		); err != nil {
			return fmt.Errorf("insert store id=%d: %w", s.ID, err)
		}
	}
	return nil
}

func insertCustomersPostgres(ctx context.Context, tx *sql.Tx, customers []domain.Customer) error {
	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO customers (
		id, name, email, phone, address, city, country, latitude, longitude,
		customer_since, type, priority_level
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude;
	`)
	if err != nil {
		return fmt.Errorf("prepare customers insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range customers {
		if _, err := stmt.ExecContext(ctx,
			c.ID, c.Name, c.Email, c.Phone, c.Address, c.City, c.Country, c.Latitude, c.Longitude,
			c.CustomerSince, c.Type, c.PriorityLevel,
		); err != nil {
			return fmt.Errorf("insert customer id=%d: %w", c.ID, err)
		}
	}
	return nil
}

func insertClustersPostgres(ctx context.Context, tx *sql.Tx, clusters []domain.Cluster) error {
	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO clusters (
		id, name, latitude, longitude, radius, order_count, status
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE SET
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		radius = EXCLUDED.radius,
		order_count = EXCLUDED.order_count,
		status = EXCLUDED.status;
	`)
	if err != nil {
		return fmt.Errorf("prepare clusters insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range clusters {
		if _, err := stmt.ExecContext(ctx,
			c.ID, c.Name, c.Latitude, c.Longitude, c.Radius, c.OrderCount, c.Status,
		); err != nil {
			return fmt.Errorf("insert cluster id=%d: %w", c.ID, err)
		}
	}
	return nil
}

func insertOrdersPostgres(ctx context.Context, tx *sql.Tx, orders []*domain.Order) error {
	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO orders (
		id, uuid, customer_id, store_id, status, priority, order_date,
		expected_delivery_date, items, total_weight, value, currency,
		pickup_latitude, pickup_longitude, delivery_latitude, delivery_longitude,
		cluster_id, driver_id
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	ON CONFLICT (id) DO UPDATE SET
		status = EXCLUDED.status,
		cluster_id = EXCLUDED.cluster_id,
		driver_id = EXCLUDED.driver_id;
	`)
	if err != nil {
		return fmt.Errorf("prepare orders insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range orders {
		if _, err := stmt.ExecContext(ctx,
			o.ID, o.UUID, o.CustomerID, o.StoreID, string(o.Status), o.Priority, o.OrderDate,
			o.ExpectedDeliveryDate, o.Items, o.TotalWeight, o.Value, o.Currency,
			o.PickupLatitude, o.PickupLongitude, o.DeliveryLatitude, o.DeliveryLongitude,
			o.ClusterID, o.DriverID,
		); err != nil {
			return fmt.Errorf("insert order id=%d: %w", o.ID, err)
		}
	}
	return nil
}
