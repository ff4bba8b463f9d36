package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// Collection names
const (
	ColPageContent = "page_contents"
	ColForms       = "forms"
	ColSubmissions = "form_submissions"
)

func InitDB() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("❌ MONGODB_URI not set")
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "academy"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("❌ Failed to connect to MongoDB:", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("❌ MongoDB ping failed:", err)
	}

	Client = client
	DB = client.Database(dbName)

	ensureIndexes(ctx)

	log.Println("✅ Connected to MongoDB:", dbName)
}

// ensureIndexes creates the unique keys the upsert paths rely on.
func ensureIndexes(ctx context.Context) {
	_, err := DB.Collection(ColPageContent).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pageKey", Value: 1}, {Key: "locale", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatal("❌ Failed to create page_contents index:", err)
	}

	_, err = DB.Collection(ColForms).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pageKey", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatal("❌ Failed to create forms index:", err)
	}

	_, err = DB.Collection(ColSubmissions).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "pageKey", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		log.Fatal("❌ Failed to create form_submissions index:", err)
	}
}

func Disconnect() {
	if Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = Client.Disconnect(ctx)
}
