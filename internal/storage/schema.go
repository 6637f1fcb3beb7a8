// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: One table per life domain plus projects and inbox_items.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS body_logs (
		date TEXT PRIMARY KEY,
		sleep_hours REAL NOT NULL,
		sleep_quality INTEGER NOT NULL,
		training_done INTEGER NOT NULL,
		training_type TEXT NOT NULL DEFAULT '',
		energy_level INTEGER NOT NULL,
		activity_level INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS mind_logs (
		date TEXT PRIMARY KEY,
		mood INTEGER NOT NULL,
		anxiety INTEGER NOT NULL,
		stress INTEGER NOT NULL,
		focus INTEGER NOT NULL,
		journal TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS finance_logs (
		date TEXT PRIMARY KEY,
		income REAL NOT NULL,
		expenses REAL NOT NULL,
		debts REAL NOT NULL,
		installments REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		weekly_goal_hours REAL NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS discipline_logs (
		date TEXT NOT NULL,
		project_id TEXT NOT NULL,
		minutes_invested INTEGER NOT NULL,
		focus_level INTEGER NOT NULL,
		PRIMARY KEY (date, project_id),
		FOREIGN KEY (project_id) REFERENCES projects(id)
	);

	CREATE TABLE IF NOT EXISTS inbox_items (
		id TEXT PRIMARY KEY,
		content TEXT NOT NULL,
		type TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_discipline_date ON discipline_logs(date DESC);
	CREATE INDEX IF NOT EXISTS idx_discipline_project ON discipline_logs(project_id);
	CREATE INDEX IF NOT EXISTS idx_inbox_created ON inbox_items(created_at DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
