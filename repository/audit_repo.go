package repository

import (
	"context"
	"sort"
	"techservice-backend/dal"
	"techservice-backend/models"
	"techservice-backend/utils/logger"
)

type AuditRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewAuditRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *AuditRepository {
	return &AuditRepository{db: db, config: cfg, logger: log}
}

func (r *AuditRepository) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	if err := r.db.PutItem(ctx, r.config.TableName(AuditLogsTable), entry); err != nil {
		r.logger.Errorf("Failed to write audit log for %s %s: %v", entry.ResourceType, entry.ResourceID, err)
		return err
	}
	return nil
}

// ListByResource returns the audit trail of a resource, newest first
func (r *AuditRepository) ListByResource(ctx context.Context, resourceID string) ([]*models.AuditLog, error) {
	var entries []*models.AuditLog
	if err := r.db.QueryByIndex(ctx, r.config.TableName(AuditLogsTable), "resourceId-index", "resourceId", resourceID, &entries); err != nil {
		r.logger.Errorf("Failed to read audit trail for %s: %v", resourceID, err)
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}
