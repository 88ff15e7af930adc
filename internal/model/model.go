package model

import "time"

// Transaction is one recorded payment attempt. Write-mostly: the checkout
// flow appends rows, only the report server reads them back.
type Transaction struct {
	ID        string `gorm:"primaryKey;size:64;not null"`
	Method    string `gorm:"size:32;index;not null"` // Credit, PayPal, Cryptocurrency, Cash
	Amount    string `gorm:"size:32;not null"`       // charged amount, 2 decimals
	Success   bool   `gorm:"index;not null"`
	CreatedAt time.Time
}
