package sqlite

// Schema DDL. Statements are idempotent so Attach can run them against an
// existing notes.db.
const (
	createSlots = `CREATE TABLE IF NOT EXISTS slots (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`
)

// Slot queries.
const (
	selectSlot = `SELECT value FROM slots WHERE key = ?`

	upsertSlot = `INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

// schemaDDL lists all statements executed on Attach, in order.
var schemaDDL = []string{
	createSlots,
}
