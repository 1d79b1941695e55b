// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// DebtRecordModel represents the debt_records table in the database.
type DebtRecordModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	WalletID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	PersonName  string          `gorm:"type:varchar(100);not null;index"`
	Kind        string          `gorm:"type:varchar(10);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Time        string          `gorm:"type:varchar(5)"`
	Description string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	User   *UserModel   `gorm:"foreignKey:UserID;references:ID"`
	Wallet *WalletModel `gorm:"foreignKey:WalletID;references:ID"`
}

// TableName returns the table name for the DebtRecordModel.
func (DebtRecordModel) TableName() string {
	return "debt_records"
}

// ToEntity converts a DebtRecordModel to a domain DebtRecord entity.
func (m *DebtRecordModel) ToEntity() *entity.DebtRecord {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.DebtRecord{
		ID:          m.ID,
		UserID:      m.UserID,
		WalletID:    m.WalletID,
		PersonName:  m.PersonName,
		Kind:        entity.DebtKind(m.Kind),
		Amount:      m.Amount,
		Date:        m.Date,
		Time:        m.Time,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// DebtRecordFromEntity creates a DebtRecordModel from a domain DebtRecord entity.
func DebtRecordFromEntity(record *entity.DebtRecord) *DebtRecordModel {
	var deletedAt gorm.DeletedAt
	if record.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *record.DeletedAt, Valid: true}
	}

	return &DebtRecordModel{
		ID:          record.ID,
		UserID:      record.UserID,
		WalletID:    record.WalletID,
		PersonName:  record.PersonName,
		Kind:        string(record.Kind),
		Amount:      record.Amount,
		Date:        record.Date,
		Time:        record.Time,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
