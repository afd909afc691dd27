package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"quickstore/internal/domain/model"
	repo "quickstore/internal/repository"
	"quickstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSessions struct {
	sessions map[uuid.UUID]model.Session
}

func dateKey(t time.Time) string { return t.Format("2006-01-02") }

func (m *memSessions) FindByDate(ctx context.Context, storeID uuid.UUID, date time.Time) (model.Session, error) {
	for _, s := range m.sessions {
		if s.StoreID == storeID && dateKey(s.Date) == dateKey(date) {
			return s, nil
		}
	}
	return model.Session{}, repo.ErrNotFound
}

func (m *memSessions) Create(ctx context.Context, s model.Session) (model.Session, error) {
	m.sessions[s.ID] = s
	return s, nil
}

func (m *memSessions) MarkExported(ctx context.Context, storeID uuid.UUID, sessionID uuid.UUID) (model.Session, error) {
	s, ok := m.sessions[sessionID]
	if !ok || s.StoreID != storeID {
		return model.Session{}, repo.ErrNotFound
	}
	s.Exported = true
	m.sessions[sessionID] = s
	return s, nil
}

func TestSessionUsecase_Current_CreatesOncePerDay(t *testing.T) {
	mem := &memSessions{sessions: map[uuid.UUID]model.Session{}}
	uc := usecase.NewSessionUsecase(mem)
	store := model.Store{ID: uuid.New()}
	ctx := context.Background()

	first, err := uc.Current(ctx, store)
	require.NoError(t, err)

	//同じ日の2回目は同じセッションを返す
	second, err := uc.Current(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, mem.sessions, 1)
}

func TestSessionUsecase_Current_SeparatePerStore(t *testing.T) {
	mem := &memSessions{sessions: map[uuid.UUID]model.Session{}}
	uc := usecase.NewSessionUsecase(mem)
	ctx := context.Background()

	a, err := uc.Current(ctx, model.Store{ID: uuid.New()})
	require.NoError(t, err)
	b, err := uc.Current(ctx, model.Store{ID: uuid.New()})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSessionUsecase_MarkExported(t *testing.T) {
	mem := &memSessions{sessions: map[uuid.UUID]model.Session{}}
	uc := usecase.NewSessionUsecase(mem)
	store := model.Store{ID: uuid.New()}
	ctx := context.Background()

	s, err := uc.Current(ctx, store)
	require.NoError(t, err)

	out, err := uc.MarkExported(ctx, store, s.ID)
	require.NoError(t, err)
	assert.True(t, out.Exported)

	_, err = uc.MarkExported(ctx, store, uuid.New())
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestSessionUsecase_MarkExported_WrongStore(t *testing.T) {
	mem := &memSessions{sessions: map[uuid.UUID]model.Session{}}
	uc := usecase.NewSessionUsecase(mem)
	store := model.Store{ID: uuid.New()}
	ctx := context.Background()

	s, err := uc.Current(ctx, store)
	require.NoError(t, err)

	_, err = uc.MarkExported(ctx, model.Store{ID: uuid.New()}, s.ID)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestSessionUsecase_ByDate_GetOrCreate(t *testing.T) {
	mem := &memSessions{sessions: map[uuid.UUID]model.Session{}}
	uc := usecase.NewSessionUsecase(mem)
	store := model.Store{ID: uuid.New()}
	ctx := context.Background()

	day := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	first, err := uc.ByDate(ctx, store, day)
	require.NoError(t, err)
	assert.Equal(t, dateKey(day), dateKey(first.Date))

	//同じ日付は既存を返す
	second, err := uc.ByDate(ctx, store, day)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	//別の日付は別セッション
	other, err := uc.ByDate(ctx, store, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}
