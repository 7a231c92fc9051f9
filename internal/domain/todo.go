package domain

// Todo is the domain entity for a task item. The title is stored already
// HTML-escaped; reads return it as-is, no re-escaping.
type Todo struct {
	ID     int64
	Title  string
	Done   bool
	UserID int64
}
