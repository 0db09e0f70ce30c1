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

const companiesCollection = "companies"

type MongoCompanyRepository struct {
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *MongoCompanyRepository {
	return &MongoCompanyRepository{coll: db.Collection(companiesCollection)}
}

type mongoCompany struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Address     string             `bson:"address"`
	UserIDs     []string           `bson:"users"`
	ActivityIDs []string           `bson:"activities"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (mc mongoCompany) toDomain() *domain.Company {
	return &domain.Company{
		ID:          mc.ID.Hex(),
		Name:        mc.Name,
		Address:     mc.Address,
		UserIDs:     mc.UserIDs,
		ActivityIDs: mc.ActivityIDs,
		CreatedAt:   unixToTime(mc.CreatedAt),
		UpdatedAt:   unixToTime(mc.UpdatedAt),
	}
}

func (r *MongoCompanyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	doc := mongoCompany{
		Name:        company.Name,
		Address:     company.Address,
		UserIDs:     company.UserIDs,
		ActivityIDs: company.ActivityIDs,
		CreatedAt:   company.CreatedAt.Unix(),
		UpdatedAt:   company.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCompanyExists
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}

	created := *company
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoCompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCompanyNotFound
	}

	var mc mongoCompany
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *MongoCompanyRepository) FindByName(ctx context.Context, name string) (*domain.Company, error) {
	var mc mongoCompany
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company by name: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *MongoCompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer cursor.Close(ctx)

	var companies []domain.Company
	for cursor.Next(ctx) {
		var mc mongoCompany
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode company: %w", err)
		}
		companies = append(companies, *mc.toDomain())
	}
	return companies, cursor.Err()
}

func (r *MongoCompanyRepository) Update(ctx context.Context, id string, company *domain.Company) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCompanyNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":       company.Name,
		"address":    company.Address,
		"updated_at": time.Now().UTC().Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrCompanyExists
		}
		return fmt.Errorf("update company: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func (r *MongoCompanyRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCompanyNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func (r *MongoCompanyRepository) AddUser(ctx context.Context, companyID, userID string) error {
	return r.push(ctx, companyID, "users", userID)
}

func (r *MongoCompanyRepository) RemoveUser(ctx context.Context, companyID, userID string) error {
	return r.pull(ctx, companyID, "users", userID)
}

func (r *MongoCompanyRepository) AddActivity(ctx context.Context, companyID, activityID string) error {
	return r.push(ctx, companyID, "activities", activityID)
}

func (r *MongoCompanyRepository) RemoveActivity(ctx context.Context, companyID, activityID string) error {
	return r.pull(ctx, companyID, "activities", activityID)
}

// push appends member to the named array unless it is already present.
// $addToSet would hide the duplicate, so membership is checked first and a
// repeat add reports ErrAlreadyMember.
func (r *MongoCompanyRepository) push(ctx context.Context, companyID, field, member string) error {
	company, err := r.FindByID(ctx, companyID)
	if err != nil {
		return err
	}
	if containsMember(company, field, member) {
		return domain.ErrAlreadyMember
	}

	oid, _ := primitive.ObjectIDFromHex(companyID)
	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{field: member}})
	if err != nil {
		return fmt.Errorf("push %s: %w", field, err)
	}
	return nil
}

func (r *MongoCompanyRepository) pull(ctx context.Context, companyID, field, member string) error {
	company, err := r.FindByID(ctx, companyID)
	if err != nil {
		return err
	}
	if !containsMember(company, field, member) {
		return domain.ErrNotMember
	}

	oid, _ := primitive.ObjectIDFromHex(companyID)
	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$pull": bson.M{field: member}})
	if err != nil {
		return fmt.Errorf("pull %s: %w", field, err)
	}
	return nil
}

func containsMember(company *domain.Company, field, member string) bool {
	ids := company.UserIDs
	if field == "activities" {
		ids = company.ActivityIDs
	}
	for _, id := range ids {
		if id == member {
			return true
		}
	}
	return false
}
