package testimonial

import "go.mongodb.org/mongo-driver/bson/primitive"

type Testimonial struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Author      string             `bson:"author" json:"author"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
}
