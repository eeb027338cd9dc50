package validators

import "go.mongodb.org/mongo-driver/bson"

// Resort documents are free-form catalog entries, so the schema only
// pins down the envelope.
var ResortValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
