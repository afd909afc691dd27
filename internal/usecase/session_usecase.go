package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"quickstore/internal/domain/model"
	repo "quickstore/internal/repository"

	"github.com/google/uuid"
)

type SessionUsecase struct {
	sessions repo.SessionRepository
}

// DI
func NewSessionUsecase(sessions repo.SessionRepository) *SessionUsecase {
	return &SessionUsecase{sessions: sessions}
}

// Current は今日の営業セッションを返す。無ければ作る（1店舗1日1件）。
func (u *SessionUsecase) Current(ctx context.Context, store model.Store) (model.Session, error) {
	return u.ByDate(ctx, store, time.Now())
}

// ByDate は指定日のセッションのget-or-create。
func (u *SessionUsecase) ByDate(ctx context.Context, store model.Store, date time.Time) (model.Session, error) {
	s, err := u.sessions.FindByDate(ctx, store.ID, date)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.Session{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.sessions.Create(ctx, model.Session{
		ID:      uuid.New(),
		StoreID: store.ID,
		Date:    date,
	})
	if errors.Is(err, repo.ErrConflict) {
		//同時作成で一意制約に負けたら既存を引き直す
		s, ferr := u.sessions.FindByDate(ctx, store.ID, date)
		if ferr == nil {
			return s, nil
		}
		return model.Session{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err != nil {
		return model.Session{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// MarkExported はセッションを精算済みにする。
func (u *SessionUsecase) MarkExported(ctx context.Context, store model.Store, sessionID uuid.UUID) (model.Session, error) {
	s, err := u.sessions.MarkExported(ctx, store.ID, sessionID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Session{}, NewHTTPError(http.StatusNotFound, "session not found")
	}
	if err != nil {
		return model.Session{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}
