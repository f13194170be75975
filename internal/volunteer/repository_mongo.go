package volunteer

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection("volunteers")}
}

func (r *MongoRepository) Create(ctx context.Context, volunteer Volunteer) (Volunteer, error) {
	res, err := r.coll.InsertOne(ctx, volunteer)
	if err != nil {
		return Volunteer{}, err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		volunteer.ID = id
	}
	return volunteer, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Volunteer, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]Volunteer, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Volunteer{}
	}
	return out, nil
}
