package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN
			CREATE TYPE user_role AS ENUM ('ADMIN', 'AGENT', 'CUSTOMER');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'request_status') THEN
			CREATE TYPE request_status AS ENUM ('PENDING', 'APPROVED');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(64) NOT NULL,
		password VARCHAR(128) NOT NULL,
		email VARCHAR(255),
		role user_role NOT NULL DEFAULT 'CUSTOMER'
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_username ON users (username);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users (email) WHERE email IS NOT NULL AND email <> '';`,
	`CREATE TABLE IF NOT EXISTS providers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		provider_name VARCHAR(255) NOT NULL,
		contact_details TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS vehicle_contracts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_type VARCHAR(64) NOT NULL,
		base_rate_per_day NUMERIC(18,2) NOT NULL CHECK (base_rate_per_day >= 0),
		allowed_mileage INT NOT NULL DEFAULT 0,
		availability_status BOOLEAN NOT NULL DEFAULT TRUE,
		provider_id UUID REFERENCES providers(id),
		agent_id UUID REFERENCES users(id)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_availability ON vehicle_contracts (availability_status);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_type_availability ON vehicle_contracts (vehicle_type, availability_status);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_agent_id ON vehicle_contracts (agent_id) WHERE agent_id IS NOT NULL;`,
	`CREATE TABLE IF NOT EXISTS booking_requests (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		customer_id UUID NOT NULL REFERENCES users(id),
		agent_id UUID NOT NULL REFERENCES users(id),
		contract_id UUID NOT NULL REFERENCES vehicle_contracts(id),
		vehicle_type VARCHAR(64) NOT NULL,
		final_price NUMERIC(18,2) NOT NULL,
		status request_status NOT NULL DEFAULT 'PENDING',
		request_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_requests_agent_id ON booking_requests (agent_id);`,
	`CREATE INDEX IF NOT EXISTS idx_requests_customer_id ON booking_requests (customer_id);`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contract_id UUID NOT NULL REFERENCES vehicle_contracts(id),
		customer_id UUID REFERENCES users(id),
		agent_id UUID NOT NULL REFERENCES users(id),
		customer_name VARCHAR(255),
		requirements TEXT,
		pickup_date DATE NOT NULL,
		rental_days INT NOT NULL CHECK (rental_days >= 1),
		vehicle_count INT NOT NULL CHECK (vehicle_count >= 1),
		final_price NUMERIC(18,2) NOT NULL,
		booking_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_agent_id ON bookings (agent_id);`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_contract_id ON bookings (contract_id);`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		first_name VARCHAR(128),
		last_name VARCHAR(128),
		email VARCHAR(255),
		subject VARCHAR(255),
		message TEXT,
		submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
