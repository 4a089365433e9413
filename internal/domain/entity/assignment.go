package entity

import "time"

// OrderAssignment vincula una orden con una cuenta staff. El par
// (order, staff) es único (constraint en la DB, no lock de aplicación).
type OrderAssignment struct {
	ID         string
	OrderID    string // FK a purchase_orders
	StaffID    string // FK a accounts (rol staff)
	Notes      string
	AssignedAt time.Time
}
