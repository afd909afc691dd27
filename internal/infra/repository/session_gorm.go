package repository

import (
	"context"
	"errors"
	"time"

	"quickstore/internal/domain/model"
	repo "quickstore/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// postgresの一意制約違反
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type SessionGormRepository struct {
	db *gorm.DB
}

func NewSessionGormRepository(db *gorm.DB) *SessionGormRepository {
	return &SessionGormRepository{db: db}
}

func (r *SessionGormRepository) FindByDate(ctx context.Context, storeID uuid.UUID, date time.Time) (model.Session, error) {
	var s model.Session
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND date = ?", storeID, date.Format("2006-01-02")).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Session{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Session{}, err
	}
	return s, nil
}

func (r *SessionGormRepository) Create(ctx context.Context, s model.Session) (model.Session, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		//uq_store_dateに負けたら同時作成。呼び出し側が既存を引き直す。
		if isUniqueViolation(err) {
			return model.Session{}, repo.ErrConflict
		}
		return model.Session{}, err
	}
	return s, nil
}

func (r *SessionGormRepository) MarkExported(ctx context.Context, storeID uuid.UUID, sessionID uuid.UUID) (model.Session, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ? AND store_id = ?", sessionID, storeID).
		Update("exported", true)
	if res.Error != nil {
		return model.Session{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Session{}, repo.ErrNotFound
	}

	var s model.Session
	if err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&s).Error; err != nil {
		return model.Session{}, err
	}
	return s, nil
}
