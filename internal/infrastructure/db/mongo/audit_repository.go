package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/planwise/scheduling-api/internal/core/ports"
)

const auditCollection = "auth_events"

// MongoAuditRepository persists auth audit events. Writes come from the
// audit dispatcher workers, never from the request path.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	EventID    string `bson:"event_id"`
	Kind       string `bson:"kind"`
	Subject    string `bson:"subject"`
	Reason     string `bson:"reason,omitempty"`
	OccurredAt int64  `bson:"occurred_at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event ports.AuditEvent) error {
	doc := mongoAuditEvent{
		EventID:    event.ID,
		Kind:       event.Kind,
		Subject:    event.Subject,
		Reason:     event.Reason,
		OccurredAt: event.OccurredAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
