package entity

// User cliente que realiza órdenes.
type User struct {
	ID       string
	Username string
}
