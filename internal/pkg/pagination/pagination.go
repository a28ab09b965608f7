package pagination

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stakehall/core/internal/pkg/response"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 50
)

// Query holds normalized pagination parameters: page >= 1, size in
// [1,50]. An out-of-range page_size falls back to the default.
type Query struct {
	Page int
	Size int
}

// FromContext extracts page/page_size from the request query.
func FromContext(c *gin.Context) Query {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	size := parseIntOr(c.DefaultQuery("page_size", "10"), DefaultSize)
	return Normalize(page, size)
}

// Normalize clamps raw page/size values.
func Normalize(page, size int) Query {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 || size > MaxSize {
		size = DefaultSize
	}
	return Query{Page: page, Size: size}
}

// Skip returns the cursor offset for the current page.
func (q Query) Skip() int64 { return int64(q.Page-1) * int64(q.Size) }

// Meta builds the pagination metadata for a total match count.
func (q Query) Meta(total int64) response.Pagination {
	pages := int((total + int64(q.Size) - 1) / int64(q.Size))
	return response.Pagination{
		Page:     q.Page,
		PageSize: q.Size,
		Total:    total,
		Pages:    pages,
	}
}

// Empty is the zero-result page returned when storage is degraded.
func (q Query) Empty() response.Pagination {
	return response.Pagination{Page: q.Page, PageSize: q.Size}
}

// Find runs count + sorted find with skip/limit against a collection
// and decodes the page into dest.
func Find[T any](ctx context.Context, col *mongo.Collection, filter bson.M, sort bson.D, q Query, dest *[]T) (response.Pagination, error) {
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return response.Pagination{}, err
	}

	opts := options.Find().SetSkip(q.Skip()).SetLimit(int64(q.Size))
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return response.Pagination{}, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, dest); err != nil {
		return response.Pagination{}, err
	}
	return q.Meta(total), nil
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
