package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskforge/projecthub/internal/core/domain"
)

const auditCollection = "audit_logs"

// AuditRepository persists the append-only audit trail.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEntry struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Action         string             `bson:"action"`
	PerformedBy    string             `bson:"performed_by,omitempty"`
	PerformedAt    time.Time          `bson:"performed_at"`
	TargetResource string             `bson:"target_resource"`
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	doc := mongoAuditEntry{
		Action:         entry.Action,
		PerformedBy:    entry.PerformedBy,
		PerformedAt:    entry.PerformedAt,
		TargetResource: entry.TargetResource,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListNewestFirst(ctx context.Context, limit int64) ([]*domain.AuditEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "performed_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer cur.Close(ctx)

	var entries []*domain.AuditEntry
	for cur.Next(ctx) {
		var me mongoAuditEntry
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, &domain.AuditEntry{
			ID:             me.ID.Hex(),
			Action:         me.Action,
			PerformedBy:    me.PerformedBy,
			PerformedAt:    me.PerformedAt.UTC(),
			TargetResource: me.TargetResource,
		})
	}
	return entries, cur.Err()
}

// EnsureIndexes backs the newest-first listing.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "performed_at", Value: -1}},
	})
	return err
}
