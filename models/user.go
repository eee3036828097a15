package models

import "time"

// UserRole defines the two station roles in the system
type UserRole string

const (
	RoleCashier UserRole = "CASHIER"
	RoleKitchen UserRole = "KITCHEN"
)

// User is reference data loaded by the seeder; the role is fixed at creation.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Role      UserRole  `json:"role" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}
