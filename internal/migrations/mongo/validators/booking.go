package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"bookingId",
			"email",
			"resortId",
			"startDate",
			"endDate",
			"status",
			"createdAt",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"bookingId": bson.M{
				"bsonType": "string",
				"pattern":  "^TR-[0-9]{6}$",
			},

			"email": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 320,
			},

			"resortId": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"startDate": bson.M{
				"bsonType": "date",
			},

			"endDate": bson.M{
				"bsonType": "date",
			},

			"guests": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
			},

			"paymentInfo": bson.M{
				"bsonType": "object",
				"properties": bson.M{
					"cardNumber": bson.M{"bsonType": "string"},
					"cardHolder": bson.M{"bsonType": "string"},
					"method":     bson.M{"bsonType": "string"},
				},
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"active",
					"cancelled",
				},
			},

			"cancellation": bson.M{
				"bsonType": "object",
				"required": []string{"cancelledAt", "refundEligible"},
				"properties": bson.M{
					"cancelledAt":    bson.M{"bsonType": "date"},
					"reason":         bson.M{"bsonType": "string"},
					"refundEligible": bson.M{"bsonType": "bool"},
				},
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},

			"updatedAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
