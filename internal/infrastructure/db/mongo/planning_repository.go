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

const planningsCollection = "plannings"

type MongoPlanningRepository struct {
	coll *mongo.Collection
}

func NewPlanningRepository(db *mongo.Database) *MongoPlanningRepository {
	return &MongoPlanningRepository{coll: db.Collection(planningsCollection)}
}

type mongoPlanning struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	CompanyID   string             `bson:"company_id,omitempty"`
	ActivityIDs []string           `bson:"activities"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (mp mongoPlanning) toDomain() *domain.Planning {
	return &domain.Planning{
		ID:          mp.ID.Hex(),
		Name:        mp.Name,
		CompanyID:   mp.CompanyID,
		ActivityIDs: mp.ActivityIDs,
		CreatedAt:   unixToTime(mp.CreatedAt),
		UpdatedAt:   unixToTime(mp.UpdatedAt),
	}
}

func (r *MongoPlanningRepository) Create(ctx context.Context, planning *domain.Planning) (*domain.Planning, error) {
	doc := mongoPlanning{
		Name:        planning.Name,
		CompanyID:   planning.CompanyID,
		ActivityIDs: planning.ActivityIDs,
		CreatedAt:   planning.CreatedAt.Unix(),
		UpdatedAt:   planning.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert planning: %w", err)
	}

	created := *planning
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoPlanningRepository) FindByID(ctx context.Context, id string) (*domain.Planning, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPlanningNotFound
	}

	var mp mongoPlanning
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPlanningNotFound
		}
		return nil, fmt.Errorf("find planning: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoPlanningRepository) List(ctx context.Context) ([]domain.Planning, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list plannings: %w", err)
	}
	defer cursor.Close(ctx)

	var plannings []domain.Planning
	for cursor.Next(ctx) {
		var mp mongoPlanning
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode planning: %w", err)
		}
		plannings = append(plannings, *mp.toDomain())
	}
	return plannings, cursor.Err()
}

func (r *MongoPlanningRepository) Update(ctx context.Context, id string, planning *domain.Planning) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPlanningNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":       planning.Name,
		"company_id": planning.CompanyID,
		"updated_at": time.Now().UTC().Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update planning: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPlanningNotFound
	}
	return nil
}

func (r *MongoPlanningRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPlanningNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete planning: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPlanningNotFound
	}
	return nil
}

func (r *MongoPlanningRepository) AddActivity(ctx context.Context, planningID, activityID string) error {
	planning, err := r.FindByID(ctx, planningID)
	if err != nil {
		return err
	}
	for _, id := range planning.ActivityIDs {
		if id == activityID {
			return domain.ErrAlreadyMember
		}
	}

	oid, _ := primitive.ObjectIDFromHex(planningID)
	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{"activities": activityID}})
	if err != nil {
		return fmt.Errorf("push activity: %w", err)
	}
	return nil
}

func (r *MongoPlanningRepository) RemoveActivity(ctx context.Context, planningID, activityID string) error {
	planning, err := r.FindByID(ctx, planningID)
	if err != nil {
		return err
	}
	found := false
	for _, id := range planning.ActivityIDs {
		if id == activityID {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrNotMember
	}

	oid, _ := primitive.ObjectIDFromHex(planningID)
	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$pull": bson.M{"activities": activityID}})
	if err != nil {
		return fmt.Errorf("pull activity: %w", err)
	}
	return nil
}
