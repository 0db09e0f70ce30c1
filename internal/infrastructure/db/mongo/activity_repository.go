package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/planwise/scheduling-api/internal/core/domain"
)

const activitiesCollection = "activities"

type MongoActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{coll: db.Collection(activitiesCollection)}
}

type mongoActivity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Day       string             `bson:"day"`
	Start     string             `bson:"start"`
	End       string             `bson:"end"`
	Label     string             `bson:"label,omitempty"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (ma mongoActivity) toDomain() *domain.Activity {
	return &domain.Activity{
		ID:        ma.ID.Hex(),
		Day:       ma.Day,
		Start:     ma.Start,
		End:       ma.End,
		Label:     ma.Label,
		CreatedAt: unixToTime(ma.CreatedAt),
		UpdatedAt: unixToTime(ma.UpdatedAt),
	}
}

func (r *MongoActivityRepository) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	doc := mongoActivity{
		Day:       activity.Day,
		Start:     activity.Start,
		End:       activity.End,
		Label:     activity.Label,
		CreatedAt: activity.CreatedAt.Unix(),
		UpdatedAt: activity.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}

	created := *activity
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoActivityRepository) FindByID(ctx context.Context, id string) (*domain.Activity, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrActivityNotFound
	}

	var ma mongoActivity
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("find activity: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoActivityRepository) List(ctx context.Context) ([]domain.Activity, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []domain.Activity
	for cursor.Next(ctx) {
		var ma mongoActivity
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		activities = append(activities, *ma.toDomain())
	}
	return activities, cursor.Err()
}

func (r *MongoActivityRepository) Update(ctx context.Context, id string, activity *domain.Activity) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrActivityNotFound
	}

	update := bson.M{"$set": bson.M{
		"day":        activity.Day,
		"start":      activity.Start,
		"end":        activity.End,
		"label":      activity.Label,
		"updated_at": time.Now().UTC().Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *MongoActivityRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrActivityNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}
