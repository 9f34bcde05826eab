package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ireporter/api/internal/domain/contract"
	"github.com/ireporter/api/internal/domain/entity"
)

// ReportCacheStore caches report details in Redis. Entries are invalidated on
// every write to the underlying report.
type ReportCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
}

var _ contract.IReportCache = (*ReportCacheStore)(nil)

func NewReportCacheStore(rdb *redis.Client) *ReportCacheStore {
	return &ReportCacheStore{
		rdb:       rdb,
		detailTTL: 30 * time.Minute,
	}
}

func reportDetailKey(id string) string { return fmt.Sprintf("report:id:%s", id) }

func (c *ReportCacheStore) GetReportByID(ctx context.Context, id string) (*entity.Report, bool, error) {
	b, err := c.rdb.Get(ctx, reportDetailKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var report entity.Report
	if err := json.Unmarshal(b, &report); err != nil {
		// Stale or corrupt entry; treat as a miss.
		return nil, false, nil
	}
	return &report, true, nil
}

func (c *ReportCacheStore) SetReportByID(ctx context.Context, report *entity.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, reportDetailKey(report.ID), data, c.detailTTL).Err()
}

func (c *ReportCacheStore) InvalidateReportByID(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, reportDetailKey(id)).Err()
}
