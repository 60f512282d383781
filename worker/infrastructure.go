package worker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"techservice-backend/dal"
	"techservice-backend/infrastructure"
	"techservice-backend/models"
	"techservice-backend/utils/logger"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// Provisioner creates the configured DynamoDB tables from the embedded schema
type Provisioner struct {
	db         dal.DatabaseClientInterface
	config     *models.Config
	logger     logger.Logger
	maxRetries int
	baseDelay  time.Duration
}

func NewProvisioner(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *Provisioner {
	retries := cfg.WorkerMaxRetries
	if retries < 0 {
		retries = 0
	}
	return &Provisioner{
		db:         db,
		config:     cfg,
		logger:     log,
		maxRetries: retries,
		baseDelay:  5 * time.Second,
	}
}

// EnsureTables checks every configured table and creates the missing ones.
// Tables are handled one at a time to stay under the control plane rate limits.
func (p *Provisioner) EnsureTables(ctx context.Context, onRetry func(table string, attempt int)) ([]models.TableStatus, error) {
	statuses := make([]models.TableStatus, 0, len(p.config.Tables))
	for _, base := range p.config.Tables {
		status, err := p.ensureTableWithRetry(ctx, base, onRetry)
		statuses = append(statuses, status)
		if err != nil {
			return statuses, err
		}
	}
	return statuses, nil
}

func (p *Provisioner) ensureTableWithRetry(ctx context.Context, base string, onRetry func(string, int)) (models.TableStatus, error) {
	name := p.config.TableName(base)
	status := models.TableStatus{Name: name, Status: "FAILED"}

	schema, err := infrastructure.GetSchema(base)
	if err != nil {
		status.CheckedAt = time.Now().UTC()
		return status, err
	}
	status.ExpectedIndexes = len(schema.GlobalSecondaryIndexes)

	var lastErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			delay := p.baseDelay << (attempt - 1)
			p.logger.Infof("Retrying table %s in %v (attempt %d/%d)", name, delay, attempt+1, p.maxRetries+1)
			if onRetry != nil {
				onRetry(name, attempt)
			}
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return status, ctx.Err()
			}
		}

		status.CheckedAt = time.Now().UTC()
		desc, err := p.db.DescribeTable(ctx, name)
		if err == nil {
			status.Status = string(desc.Table.TableStatus)
			status.IndexCount = len(desc.Table.GlobalSecondaryIndexes)
			p.logger.Debugf("Table %s exists (%s)", name, status.Status)
			return status, nil
		}
		if !isTableNotFoundError(err) {
			lastErr = fmt.Errorf("failed to describe table %s: %w", name, err)
			p.logger.Errorf("%v", lastErr)
			continue
		}

		input, err := infrastructure.GetTables(p.config.DynamoDBTablePrefix, base)
		if err != nil {
			return status, err
		}
		if err := p.db.CreateTable(ctx, input); err != nil {
			lastErr = fmt.Errorf("failed to create table %s: %w", name, err)
			p.logger.Errorf("Attempt %d: %v", attempt+1, lastErr)
			continue
		}

		status.Status = string(types.TableStatusCreating)
		status.Created = true
		status.IndexCount = status.ExpectedIndexes
		p.logger.Infof("Created table %s", name)
		return status, nil
	}

	return status, fmt.Errorf("giving up on table %s after %d attempts: %w", name, p.maxRetries+1, lastErr)
}

// isTableNotFoundError checks if error indicates table not found
func isTableNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ResourceNotFoundException"
	}

	return strings.Contains(err.Error(), "ResourceNotFoundException")
}
