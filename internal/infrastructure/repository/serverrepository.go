package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"inqboard/internal/domain/server"
	"inqboard/internal/infrastructure/persistence/mappers"
	"inqboard/internal/infrastructure/persistence/models"
	db "inqboard/internal/shared/db"
	"inqboard/internal/shared/errors"
)

type ServerRepository struct {
	db     *gorm.DB
	mapper mappers.ServerMapper
}

func NewServerRepository(db *gorm.DB) *ServerRepository {
	return &ServerRepository{
		db:     db,
		mapper: mappers.NewServerMapper(),
	}
}

func (r *ServerRepository) Save(ctx context.Context, s *server.Server) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return errors.NewConflictError("site name already registered")
		}
		return fmt.Errorf("failed to save server: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *ServerRepository) Update(ctx context.Context, s *server.Server) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ServerModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"host":      model.Host,
			"port":      model.Port,
			"ssh_user":  model.SSHUser,
			"ssh_pass":  model.SSHPass,
			"site_url":  model.SiteURL,
			"admin_url": model.AdminURL,
			"db_user":   model.DBUser,
			"db_pass":   model.DBPass,
			"enabled":   model.Enabled,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update server: %w", result.Error)
	}
	return nil
}

func (r *ServerRepository) Delete(ctx context.Context, serverID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ServerModel{}, serverID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete server: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("server not found")
	}
	return nil
}

func (r *ServerRepository) GetByID(ctx context.Context, serverID uint) (*server.Server, error) {
	var model models.ServerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, serverID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("server not found")
		}
		return nil, fmt.Errorf("failed to find server: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ServerRepository) GetBySiteName(ctx context.Context, siteName string) (*server.Server, error) {
	var model models.ServerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("site_name = ?", siteName).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("server not found")
		}
		return nil, fmt.Errorf("failed to find server: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ServerRepository) List(ctx context.Context, page, pageSize int) ([]*server.Server, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.ServerModel{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count servers: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	var rows []models.ServerModel
	if err := tx.
		Order("site_name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list servers: %w", err)
	}

	servers := make([]*server.Server, 0, len(rows))
	for idx := range rows {
		s, err := r.mapper.ToDomain(&rows[idx])
		if err != nil {
			return nil, 0, err
		}
		servers = append(servers, s)
	}

	return servers, total, nil
}
