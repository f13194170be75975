package testimonial

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
	return &MongoRepository{coll: db.Collection("testimonials")}
}

func (r *MongoRepository) Create(ctx context.Context, testimonial Testimonial) (Testimonial, error) {
	res, err := r.coll.InsertOne(ctx, testimonial)
	if err != nil {
		return Testimonial{}, err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		testimonial.ID = id
	}
	return testimonial, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Testimonial, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]Testimonial, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Testimonial{}
	}
	return out, nil
}
