package validators

import "go.mongodb.org/mongo-driver/bson"

var UserValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"email",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 200,
			},

			"email": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 320,
			},

			"isAdmin": bson.M{
				"bsonType": "bool",
			},

			"age": bson.M{
				"bsonType": []string{"int", "long", "double"},
				"minimum":  0,
			},

			"securityDeposit": bson.M{
				"bsonType": []string{"int", "long", "double"},
				"minimum":  0,
			},

			"documentId": bson.M{
				"bsonType": "string",
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
