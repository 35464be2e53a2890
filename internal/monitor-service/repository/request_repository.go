package repository

import (
	apperrors "VCS_API_Monitor/internal/monitor-service/errors"
	"VCS_API_Monitor/internal/monitor-service/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type RequestRepository interface {
	GetRequestDetails(ctx context.Context, requestId string) (model.Request, error)
}

type requestRepository struct {
	db *gorm.DB
}

func (r *requestRepository) GetRequestDetails(ctx context.Context, requestId string) (model.Request, error) {
	var request model.Request
	result := r.db.WithContext(ctx).Select("id", "method", "url", "headers", "body").First(&request, "id = ?", requestId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return request, fmt.Errorf("RequestRepository.GetRequestDetails: %w", apperrors.ErrRequestNotFound)
		}
		return request, wrapDBError("RequestRepository.GetRequestDetails", result.Error)
	}
	return request, nil
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{
		db: db,
	}
}
