package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"noticeboard-backend/models"
)

// MongoNoticeRepository persists notices in a MongoDB collection
type MongoNoticeRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

// NewMongoNoticeRepository connects to MongoDB and verifies the
// connection before returning the repository.
func NewMongoNoticeRepository(ctx context.Context, uri, database, collection string) (*MongoNoticeRepository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, &models.PersistenceError{Op: "connect", Err: err}
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, &models.PersistenceError{Op: "connect", Err: err}
	}

	return &MongoNoticeRepository{
		client:     client,
		database:   database,
		collection: collection,
	}, nil
}

// noticeDoc is the persisted document shape
type noticeDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	Content          string             `bson:"content"`
	MediaURL         string             `bson:"media_url"`
	Priority         int                `bson:"priority"`
	CreatedBy        string             `bson:"created_by"`
	Date             time.Time          `bson:"date"`
	OriginalFileName string             `bson:"original_file_name,omitempty"`
	ContentType      string             `bson:"content_type"`
}

func (d noticeDoc) toNotice() models.Notice {
	return models.Notice{
		ID:               d.ID.Hex(),
		Title:            d.Title,
		Content:          d.Content,
		MediaURL:         d.MediaURL,
		Priority:         d.Priority,
		CreatedBy:        d.CreatedBy,
		Date:             d.Date,
		OriginalFileName: d.OriginalFileName,
		ContentType:      models.ContentType(d.ContentType),
	}
}

// coll resolves the collection handle per logical operation; the driver
// pools connections underneath.
func (r *MongoNoticeRepository) coll() *mongo.Collection {
	return r.client.Database(r.database).Collection(r.collection)
}

// Create inserts a notice and returns the assigned ObjectID as hex
func (r *MongoNoticeRepository) Create(ctx context.Context, notice *models.Notice) (string, error) {
	doc := noticeDoc{
		Title:            notice.Title,
		Content:          notice.Content,
		MediaURL:         notice.MediaURL,
		Priority:         notice.Priority,
		CreatedBy:        notice.CreatedBy,
		Date:             notice.Date,
		OriginalFileName: notice.OriginalFileName,
		ContentType:      string(notice.ContentType),
	}

	result, err := r.coll().InsertOne(ctx, doc)
	if err != nil {
		return "", &models.PersistenceError{Op: "create", Err: err}
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", &models.PersistenceError{Op: "create", Err: mongo.ErrNilDocument}
	}
	return id.Hex(), nil
}

// ListAll retrieves every notice in display order
func (r *MongoNoticeRepository) ListAll(ctx context.Context) ([]models.Notice, error) {
	cursor, err := r.coll().Find(ctx, bson.D{})
	if err != nil {
		return nil, &models.PersistenceError{Op: "list", Err: err}
	}

	var docs []noticeDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, &models.PersistenceError{Op: "list", Err: err}
	}

	notices := make([]models.Notice, 0, len(docs))
	for _, doc := range docs {
		notices = append(notices, doc.toNotice())
	}
	sortNotices(notices)

	return notices, nil
}

// Close disconnects the underlying client
func (r *MongoNoticeRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
