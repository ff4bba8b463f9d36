package forms

import (
	"context"
	"time"

	"academy-cms/database"
	"academy-cms/internal/domain/forms"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func listForms(ctx context.Context) ([]forms.FormDefinition, error) {
	cursor, err := database.DB.Collection(database.ColForms).
		Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "pageKey", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []forms.FormDefinition{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findForm(ctx context.Context, pageKey string) (*forms.FormDefinition, error) {
	var def forms.FormDefinition
	err := database.DB.Collection(database.ColForms).
		FindOne(ctx, bson.M{"pageKey": pageKey}).
		Decode(&def)
	if err != nil {
		return nil, err
	}
	return &def, nil
}

func insertForm(ctx context.Context, def *forms.FormDefinition) error {
	now := time.Now()
	def.CreatedAt = now
	def.UpdatedAt = now
	res, err := database.DB.Collection(database.ColForms).InsertOne(ctx, def)
	if err != nil {
		return err
	}
	def.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// upsertFormSteps replaces the whole steps array for pageKey's form, creating
// the form if absent. Last write wins; concurrent admin editors are not
// reconciled.
func upsertFormSteps(ctx context.Context, pageKey string, steps []forms.Step) (*forms.FormDefinition, error) {
	now := time.Now()
	after := options.After
	var def forms.FormDefinition
	err := database.DB.Collection(database.ColForms).FindOneAndUpdate(ctx,
		bson.M{"pageKey": pageKey},
		bson.M{
			"$set":         bson.M{"steps": steps, "updatedAt": now},
			"$setOnInsert": bson.M{"pageKey": pageKey, "createdAt": now},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(after),
	).Decode(&def)
	if err != nil {
		return nil, err
	}
	return &def, nil
}

func deleteForm(ctx context.Context, pageKey string) error {
	_, err := database.DB.Collection(database.ColForms).DeleteOne(ctx, bson.M{"pageKey": pageKey})
	return err
}

func insertSubmission(ctx context.Context, sub *forms.FormSubmission) error {
	sub.CreatedAt = time.Now()
	res, err := database.DB.Collection(database.ColSubmissions).InsertOne(ctx, sub)
	if err != nil {
		return err
	}
	sub.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func listSubmissions(ctx context.Context, pageKey string) ([]forms.FormSubmission, error) {
	filter := bson.M{}
	if pageKey != "" {
		filter["pageKey"] = pageKey
	}
	cursor, err := database.DB.Collection(database.ColSubmissions).
		Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []forms.FormSubmission{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
