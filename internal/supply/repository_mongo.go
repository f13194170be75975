package supply

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection("supplies")}
}

func (r *MongoRepository) Create(ctx context.Context, supply Supply) (Supply, error) {
	res, err := r.coll.InsertOne(ctx, supply)
	if err != nil {
		return Supply{}, err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		supply.ID = id
	}
	return supply, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Supply, error) {
	opts := options.Find().SetSort(bson.D{{Key: "amount", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]Supply, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Supply{}
	}
	return out, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*Supply, error) {
	var supply Supply
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&supply)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &supply, nil
}

func (r *MongoRepository) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
	return err
}

func (r *MongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
