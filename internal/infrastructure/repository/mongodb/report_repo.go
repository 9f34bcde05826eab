package mongodb

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ireporter/api/internal/domain/apperror"
	"github.com/ireporter/api/internal/domain/contract"
	"github.com/ireporter/api/internal/domain/entity"
)

const errReportNotFound = "no report found with that ID"

type ReportRepository struct {
	collection *mongo.Collection
}

var _ contract.IReportRepository = (*ReportRepository)(nil)

func NewReportRepository(collection *mongo.Collection) *ReportRepository {
	return &ReportRepository{collection: collection}
}

func (r *ReportRepository) CreateReport(ctx context.Context, report *entity.Report) error {
	_, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *ReportRepository) GetReportByID(ctx context.Context, id string) (*entity.Report, error) {
	var report entity.Report
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound(errReportNotFound)
		}
		return nil, apperror.Internal(err)
	}
	return &report, nil
}

func (r *ReportRepository) ListReports(ctx context.Context, filter contract.ReportFilter) ([]*entity.Report, int64, error) {
	query := bson.M{}
	if filter.CreatedBy != "" {
		query["createdBy"] = filter.CreatedBy
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}

	count, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	opts := options.Find().
		SetSort(sortSpec(filter.SortBy)).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	defer cursor.Close(ctx)

	var reports []*entity.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return reports, count, nil
}

// sortSpec translates "-field" into a descending sort, defaulting to newest
// first.
func sortSpec(sortBy string) bson.D {
	if sortBy == "" {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	order := 1
	field := sortBy
	if strings.HasPrefix(sortBy, "-") {
		order = -1
		field = strings.TrimPrefix(sortBy, "-")
	}
	return bson.D{{Key: field, Value: order}}
}

// UpdateReport updates an existing report and returns the updated report.
func (r *ReportRepository) UpdateReport(ctx context.Context, report *entity.Report) (*entity.Report, error) {
	report.UpdatedAt = time.Now()
	filter := bson.M{"_id": report.ID}
	update := bson.M{"$set": report}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated entity.Report
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound(errReportNotFound)
		}
		return nil, apperror.Internal(err)
	}
	return &updated, nil
}

func (r *ReportRepository) UpdateReportStatus(ctx context.Context, id string, status entity.ReportStatus) (*entity.Report, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated entity.Report
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.NotFound(errReportNotFound)
		}
		return nil, apperror.Internal(err)
	}
	return &updated, nil
}

func (r *ReportRepository) DeleteReport(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperror.Internal(err)
	}
	if result.DeletedCount == 0 {
		return apperror.NotFound(errReportNotFound)
	}
	return nil
}
