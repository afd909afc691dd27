package repository

import (
	"context"

	"quickstore/internal/domain/model"

	"github.com/google/uuid"
)

type StoreRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (model.Store, error)

	//会社の店舗（元システムは1社1店舗運用なので先頭を現在店舗とする）
	FindByCompanyID(ctx context.Context, companyID uuid.UUID) (model.Store, error)
}
