package importing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"logistics-seed-service/internal/domain"
)

// SQLiteImporter writes a dataset directly into a SQLite database,
// bypassing the application API. The whole import runs in one
// transaction: either every record lands or none do.
type SQLiteImporter struct {
	DB        *sql.DB
	MaxOrders int
}

func NewSQLiteImporter(db *sql.DB, maxOrders int) *SQLiteImporter {
	return &SQLiteImporter{DB: db, MaxOrders: maxOrders}
}

// Initialize the SQLite import schema.
func (s *SQLiteImporter) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("sqlite importer: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
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
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			license_number TEXT NOT NULL,
			vehicle_type TEXT NOT NULL,
			max_capacity INTEGER NOT NULL,
			availability TEXT NOT NULL,
			rating REAL NOT NULL,
			join_date TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS stores (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			address TEXT NOT NULL,
			city TEXT NOT NULL,
			country TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			capacity INTEGER NOT NULL,
			manager TEXT NOT NULL,
			contact TEXT NOT NULL,
			email TEXT NOT NULL,
			operating_hours TEXT NOT NULL,
			is_active INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS customers (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			address TEXT NOT NULL,
			city TEXT NOT NULL,
			country TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
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
			total_weight REAL NOT NULL,
			value REAL NOT NULL,
			currency TEXT NOT NULL,
			pickup_latitude REAL NOT NULL,
			pickup_longitude REAL NOT NULL,
			delivery_latitude REAL NOT NULL,
			delivery_longitude REAL NOT NULL,
			cluster_id INTEGER,
			driver_id INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS clusters (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			radius REAL NOT NULL,
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

func (s *SQLiteImporter) Import(ctx context.Context, ds *domain.Dataset) error {
	if s.DB == nil {
		return errors.New("sqlite importer: DB is nil")
	}

	if err := s.InitSchema(ctx); err != nil {
		return fmt.Errorf("sqlite import: %w", err)
	}

	orders := ds.Orders
	if s.MaxOrders > 0 && len(orders) > s.MaxOrders {
		orders = orders[:s.MaxOrders]
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite import: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertAgentsSQLite(ctx, tx, ds.Agents); err != nil {
		return fmt.Errorf("sqlite import: %w", err)
	}
	if err := insertStoresSQLite(ctx, tx, ds.Stores); err != nil {
		return fmt.Errorf("sqlite import: %w", err)
	}
	if err := insertCustomersSQLite(ctx, tx, ds.Customers); err != nil {
		return fmt.Errorf("sqlite import: %w", err)
	}
	if err := insertClustersSQLite(ctx, tx, ds.Clusters); err != nil {
		return fmt.Errorf("sqlite import: %w", err)
	}
	if err := insertOrdersSQLite(ctx, tx, orders); err != nil {
		return fmt.Errorf("sqlite import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite import: commit tx: %w", err)
	}

	log.Printf(
		"sqlite import complete agents=%d stores=%d customers=%d clusters=%d orders=%d",
		len(ds.Agents), len(ds.Stores), len(ds.Customers), len(ds.Clusters), len(orders),
	)
	return nil
}

func insertAgentsSQLite(ctx context.Context, tx *sql.Tx, agents []domain.Agent) error {
	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO agents (
		id, username, email, phone, full_name, role, status, home_base,
		latitude, longitude, license_number, vehicle_type, max_capacity,
		availability, rating, join_date
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
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

func insertStoresSQLite(ctx context.Context, tx *sql.Tx, stores []domain.Store) error {
	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO stores (
		id, name, type, address, city, country, latitude, longitude,
		capacity, manager, contact, email, operating_hours, is_active
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
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

func insertCustomersSQLite(ctx context.Context, tx *sql.Tx, customers []domain.Customer) error {
	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO customers (
		id, name, email, phone, address, city, country, latitude, longitude,
		customer_since, type, priority_level
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
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

func insertClustersSQLite(ctx context.Context, tx *sql.Tx, clusters []domain.Cluster) error {
	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO clusters (
		id, name, latitude, longitude, radius, order_count, status
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
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

func insertOrdersSQLite(ctx context.Context, tx *sql.Tx, orders []*domain.Order) error {
	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO orders (
		id, uuid, customer_id, store_id, status, priority, order_date,
		expected_delivery_date, items, total_weight, value, currency,
		pickup_latitude, pickup_longitude, delivery_latitude, delivery_longitude,
		cluster_id, driver_id
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
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
