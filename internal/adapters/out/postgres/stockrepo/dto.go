// Package stockrepo persists reorder rules, one row per product.
package stockrepo

import (
	"time"

	"warehouse/internal/core/domain/model/stock"
)

// ReorderRuleDTO represents the reorder point of one product.
type ReorderRuleDTO struct {
	SKU       string    `gorm:"column:sku;type:varchar(64);primaryKey"`
	Point     int       `gorm:"type:int;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (ReorderRuleDTO) TableName() string {
	return "reorder_rules"
}

func fromDomain(rule stock.ReorderRule, updatedAt time.Time) ReorderRuleDTO {
	return ReorderRuleDTO{
		SKU:       rule.SKU(),
		Point:     rule.Point(),
		UpdatedAt: updatedAt.UTC(),
	}
}
