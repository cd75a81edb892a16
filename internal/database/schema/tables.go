// Package schema defines the database schema for development.
//
// DEVELOPMENT USE ONLY
// This file contains the current database schema and is used for development
// and testing. Production deployments apply the same statements through the
// versioned migrations in internal/migrations.
package schema

// TableDefinitions contains all the SQL statements to create the database tables
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS settings (
		key VARCHAR(255) PRIMARY KEY,
		value TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR NOT NULL,
		sales_rep VARCHAR NOT NULL,
		impressions INTEGER NOT NULL,
		finished_qty INTEGER NOT NULL,
		ups_per_sheet INTEGER NOT NULL,
		sheets_per_packet INTEGER NOT NULL,
		overs_pct DECIMAL(5, 2) DEFAULT 5.0,
		contract_value DECIMAL(12, 2) NOT NULL,
		target_deadline TIMESTAMP,
		created_at TIMESTAMP DEFAULT NOW(),
		updated_at TIMESTAMP DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS job_processes (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		process_name VARCHAR NOT NULL,
		sequence_order INTEGER NOT NULL,
		start_time TIMESTAMP NOT NULL,
		end_time TIMESTAMP NOT NULL,
		duration_hours DECIMAL(10, 2) NOT NULL,
		created_at TIMESTAMP DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS machine_loads (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		machine_name VARCHAR NOT NULL,
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		start_time TIMESTAMP NOT NULL,
		end_time TIMESTAMP NOT NULL,
		duration_hours DECIMAL(10, 2) NOT NULL,
		created_at TIMESTAMP DEFAULT NOW()
	)`,
}

// IndexDefinitions matches the intended query patterns: rep-scoped
// reporting, chronological listing, per-job step lookup and per-machine
// scheduling views.
var IndexDefinitions = []string{
	`CREATE INDEX IF NOT EXISTS idx_jobs_sales_rep ON jobs(sales_rep)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_job_processes_job_id ON job_processes(job_id)`,
	`CREATE INDEX IF NOT EXISTS idx_machine_loads_machine ON machine_loads(machine_name)`,
	`CREATE INDEX IF NOT EXISTS idx_machine_loads_time ON machine_loads(start_time, end_time)`,
}

// PolicyDefinitions enables row-level security with allow-all
// placeholder policies. These are NOT a real authorization model and
// must be replaced before multi-tenant use.
var PolicyDefinitions = []string{
	`ALTER TABLE jobs ENABLE ROW LEVEL SECURITY`,
	`DROP POLICY IF EXISTS jobs_allow_all ON jobs`,
	`CREATE POLICY jobs_allow_all ON jobs FOR ALL USING (true) WITH CHECK (true)`,
	`ALTER TABLE job_processes ENABLE ROW LEVEL SECURITY`,
	`DROP POLICY IF EXISTS job_processes_allow_all ON job_processes`,
	`CREATE POLICY job_processes_allow_all ON job_processes FOR ALL USING (true) WITH CHECK (true)`,
	`ALTER TABLE machine_loads ENABLE ROW LEVEL SECURITY`,
	`DROP POLICY IF EXISTS machine_loads_allow_all ON machine_loads`,
	`CREATE POLICY machine_loads_allow_all ON machine_loads FOR ALL USING (true) WITH CHECK (true)`,
}

// TableNames returns a list of all table names in creation order
var TableNames = []string{
	"settings",
	"jobs",
	"job_processes",
	"machine_loads",
}
