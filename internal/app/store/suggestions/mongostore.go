// internal/app/store/suggestions/mongostore.go
package suggestions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fpl-indonesia/direktori/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps suggestions in a collection, one document per
// suggestion with the integer id as _id. Selected with
// suggestion_backend=mongo; the durable contract (id assignment, status
// overwrite, backfilled defaults) matches the file backend.
type MongoStore struct {
	c *mongo.Collection
}

// suggestionDoc is the persisted shape. Older documents may lack status
// or processed_at; decoding backfills them.
type suggestionDoc struct {
	ID           int        `bson:"_id"`
	CreatedAt    time.Time  `bson:"created_at"`
	Organization string     `bson:"organisasi"`
	Submitter    string     `bson:"pengaju"`
	Contact      string     `bson:"kontak"`
	Fields       []string   `bson:"kolom,omitempty"`
	Proposal     string     `bson:"usulan"`
	Lat          *float64   `bson:"lat,omitempty"`
	Lon          *float64   `bson:"lon,omitempty"`
	Status       string     `bson:"status,omitempty"`
	ProcessedAt  *time.Time `bson:"processed_at,omitempty"`
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{c: db.Collection("suggestions")}
}

func (s *MongoStore) List(ctx context.Context) ([]models.Suggestion, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	defer cur.Close(ctx)

	var docs []suggestionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}

	out := make([]models.Suggestion, len(docs))
	for i, d := range docs {
		out[i] = d.model()
	}
	return out, nil
}

func (s *MongoStore) Submit(ctx context.Context, in NewSuggestion) (models.Suggestion, error) {
	if err := in.validate(); err != nil {
		return models.Suggestion{}, err
	}

	id, err := s.maxID(ctx)
	if err != nil {
		return models.Suggestion{}, err
	}

	sug := in.build(id+1, time.Now())
	if _, err := s.c.InsertOne(ctx, docFrom(sug)); err != nil {
		return models.Suggestion{}, fmt.Errorf("insert suggestion: %w", err)
	}
	return sug, nil
}

func (s *MongoStore) SetStatus(ctx context.Context, id int, status models.SuggestionStatus) error {
	if !status.IsTerminal() {
		return ErrBadStatus
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":       string(status),
		"processed_at": time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("update suggestion %d: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("set status for id %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *MongoStore) maxID(ctx context.Context) (int, error) {
	var doc suggestionDoc
	err := s.c.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.M{"_id": -1})).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("find max suggestion id: %w", err)
	}
	return doc.ID, nil
}

func docFrom(sug models.Suggestion) suggestionDoc {
	return suggestionDoc{
		ID:           sug.ID,
		CreatedAt:    sug.CreatedAt,
		Organization: sug.Organization,
		Submitter:    sug.Submitter,
		Contact:      sug.Contact,
		Fields:       sug.Fields,
		Proposal:     sug.Proposal,
		Lat:          sug.Lat,
		Lon:          sug.Lon,
		Status:       string(sug.Status),
		ProcessedAt:  sug.ProcessedAt,
	}
}

func (d suggestionDoc) model() models.Suggestion {
	return models.Suggestion{
		ID:           d.ID,
		CreatedAt:    d.CreatedAt,
		Organization: d.Organization,
		Submitter:    d.Submitter,
		Contact:      d.Contact,
		Fields:       d.Fields,
		Proposal:     d.Proposal,
		Lat:          d.Lat,
		Lon:          d.Lon,
		Status:       models.ParseSuggestionStatus(d.Status),
		ProcessedAt:  d.ProcessedAt,
	}
}
