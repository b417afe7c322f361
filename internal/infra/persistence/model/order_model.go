package model

import "time"

// OrderModel mirrors the 'orders' table. UserID is a nullable weak reference
// to users.id: anonymous orders carry NULL and user deletion does not cascade.
type OrderModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Size      string `gorm:"type:varchar(20);not null"`
	Flavour   string `gorm:"type:varchar(50);not null"`
	Quantity  int    `gorm:"not null"`
	Status    string `gorm:"type:varchar(20);not null;default:PENDING"`
	UserID    *uint  `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
