package content

import (
	"context"
	"time"

	"academy-cms/database"
	"academy-cms/internal/domain/content"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func findPageContent(ctx context.Context, pageKey, locale string) (*content.PageContent, error) {
	var doc content.PageContent
	err := database.DB.Collection(database.ColPageContent).
		FindOne(ctx, bson.M{"pageKey": pageKey, "locale": locale}).
		Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// upsertPageContent overwrites the stored document for (pageKey, locale)
// wholesale, creating it if absent. There is no partial patch and no
// versioning; the last write wins.
func upsertPageContent(ctx context.Context, pageKey, locale string, data map[string]interface{}) error {
	_, err := database.DB.Collection(database.ColPageContent).UpdateOne(ctx,
		bson.M{"pageKey": pageKey, "locale": locale},
		bson.M{"$set": bson.M{
			"pageKey":   pageKey,
			"locale":    locale,
			"data":      data,
			"updatedAt": time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}
