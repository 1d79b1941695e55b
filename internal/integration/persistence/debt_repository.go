// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/integration/persistence/model"
)

// debtRepository implements the adapter.DebtRepository interface.
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(db *gorm.DB) adapter.DebtRepository {
	return &debtRepository{
		db: db,
	}
}

// Create creates a new debt record in the database.
func (r *debtRepository) Create(ctx context.Context, record *entity.DebtRecord) error {
	recordModel := model.DebtRecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a debt record by its ID.
func (r *debtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DebtRecord, error) {
	var recordModel model.DebtRecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDebtRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// FindByUser retrieves all debt records for a given user, most recent first.
func (r *debtRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DebtRecord, error) {
	var recordModels []model.DebtRecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toDebtRecordEntities(recordModels), nil
}

// FindByPerson retrieves a person's debt records for a given user.
func (r *debtRepository) FindByPerson(ctx context.Context, userID uuid.UUID, personName string) ([]*entity.DebtRecord, error) {
	var recordModels []model.DebtRecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND person_name = ?", userID, personName).
		Order("date DESC, time DESC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toDebtRecordEntities(recordModels), nil
}

// CountByWallet counts the debt records attached to a wallet.
func (r *debtRepository) CountByWallet(ctx context.Context, walletID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.DebtRecordModel{}).
		Where("wallet_id = ?", walletID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing debt record in the database.
func (r *debtRepository) Update(ctx context.Context, record *entity.DebtRecord) error {
	recordModel := model.DebtRecordFromEntity(record)
	result := r.db.WithContext(ctx).Save(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a debt record from the database.
func (r *debtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.DebtRecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeletePersonWithTransfers persists the compensating transfer transactions
// and deletes the person's debt records in one database transaction. No
// observer can see the records gone while the transfers are missing.
func (r *debtRepository) DeletePersonWithTransfers(
	ctx context.Context,
	userID uuid.UUID,
	personName string,
	transfers []*entity.Transaction,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, transfer := range transfers {
			if err := tx.Create(model.TransactionFromEntity(transfer)).Error; err != nil {
				return err
			}
		}
		return tx.
			Where("user_id = ? AND person_name = ?", userID, personName).
			Delete(&model.DebtRecordModel{}).Error
	})
}

func toDebtRecordEntities(models []model.DebtRecordModel) []*entity.DebtRecord {
	records := make([]*entity.DebtRecord, len(models))
	for i, rm := range models {
		records[i] = rm.ToEntity()
	}
	return records
}
