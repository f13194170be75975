package volunteer

import "go.mongodb.org/mongo-driver/bson/primitive"

type Volunteer struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Phone    string             `bson:"phone" json:"phone"`
	Location string             `bson:"location" json:"location"`
	Image    string             `bson:"image" json:"image"`
}
