package sqlite

// Rows as SQLite stores them: identifiers as text and timestamps as unix milliseconds.

type partRow struct {
	ID   string
	Name string
}

type projectRow struct {
	ID        string
	Name      string
	CreatedAt int64
}

type bomRow struct {
	PartID   string
	Name     string
	Quantity int64
}
