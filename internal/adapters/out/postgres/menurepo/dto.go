// Package menurepo persists the menu fields order placement depends on.
package menurepo

import (
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuDTO maps the menus table. The CHECK constraint on stock is the storage
// backstop for over-subscription.
type MenuDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title        string          `gorm:"type:varchar(255);not null"`
	Active       bool            `gorm:"not null;default:true"`
	BasePrice    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	MinHeadcount int             `gorm:"not null"`
	Stock        int             `gorm:"not null;check:chk_menus_stock_non_negative,stock >= 0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (MenuDTO) TableName() string {
	return "menus"
}

func fromDomain(m *menu.Menu) MenuDTO {
	return MenuDTO{
		ID:           m.ID().Bytes(),
		Title:        m.Title(),
		Active:       m.IsActive(),
		BasePrice:    m.BasePrice().Amount(),
		MinHeadcount: m.MinHeadcount(),
		Stock:        m.Stock(),
	}
}

func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.BasePrice)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenu(id, dto.Title, dto.Active, price, dto.MinHeadcount, dto.Stock)
}
