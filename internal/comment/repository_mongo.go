package comment

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
	return &MongoRepository{coll: db.Collection("comments")}
}

func (r *MongoRepository) Create(ctx context.Context, comment Comment) (Comment, error) {
	res, err := r.coll.InsertOne(ctx, comment)
	if err != nil {
		return Comment{}, err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		comment.ID = id
	}
	return comment, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Comment, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]Comment, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Comment{}
	}
	return out, nil
}
