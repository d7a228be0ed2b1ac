package repository

import (
	"errors"
	"odyssey_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlotRepository 扁平槽位表的读写。每个会话字段一行，值为字符串编码
type SlotRepository struct {
	DB *gorm.DB
}

func NewSlotRepository(db *gorm.DB) *SlotRepository {
	return &SlotRepository{DB: db}
}

// Get 读取槽位。槽位不存在时 ok=false 且无错误
func (r *SlotRepository) Get(key string) (string, bool, error) {
	var slot model.SessionSlot
	err := r.DB.First(&slot, "slot_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return slot.Value, true, nil
}

func (r *SlotRepository) Set(key, value string) error {
	slot := model.SessionSlot{Key: key, Value: value}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"slot_value"}),
	}).Create(&slot).Error
}

// SetMany 同一事务内写入多个槽位，保证多字段更新的原子可见性
func (r *SlotRepository) SetMany(slots map[string]string) error {
	if len(slots) == 0 {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for key, value := range slots {
			slot := model.SessionSlot{Key: key, Value: value}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "slot_key"}},
				DoUpdates: clause.AssignmentColumns([]string{"slot_value"}),
			}).Create(&slot).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SlotRepository) Delete(key string) error {
	return r.DB.Delete(&model.SessionSlot{}, "slot_key = ?", key).Error
}
