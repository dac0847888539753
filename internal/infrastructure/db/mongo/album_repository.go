package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/albumhub/album-api/internal/core/domain"
	"github.com/albumhub/album-api/internal/core/ports"
)

const collectionAlbums = "albums"

type AlbumRepository struct {
	col *mongo.Collection
}

func NewAlbumRepository(db *mongo.Database) *AlbumRepository {
	return &AlbumRepository{col: db.Collection(collectionAlbums)}
}

type mongoAlbum struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Title       string               `bson:"title"`
	Slug        string               `bson:"slug"`
	Description string               `bson:"description,omitempty"`
	Photos      []primitive.ObjectID `bson:"photos"`
	CreatedAt   time.Time            `bson:"created_at"`
}

func (m *mongoAlbum) toDomain() *domain.Album {
	return &domain.Album{
		ID:          m.ID.Hex(),
		Title:       m.Title,
		Slug:        m.Slug,
		Description: m.Description,
		PhotoIDs:    hexIDs(m.Photos),
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func (r *AlbumRepository) Create(ctx context.Context, a *domain.Album) (*domain.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAlbum{
		ID:          primitive.NewObjectID(),
		Title:       a.Title,
		Slug:        a.Slug,
		Description: a.Description,
		Photos:      objectIDs(a.PhotoIDs),
		CreatedAt:   a.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert album: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AlbumRepository) FindByID(ctx context.Context, id string) (*domain.Album, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrAlbumNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAlbum
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, fmt.Errorf("find album: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *AlbumRepository) List(ctx context.Context, titleFilter string) ([]*domain.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if titleFilter != "" {
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(titleFilter), Options: "i"}
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find albums: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoAlbum
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode albums: %w", err)
	}

	albums := make([]*domain.Album, 0, len(docs))
	for i := range docs {
		albums = append(albums, docs[i].toDomain())
	}
	return albums, nil
}

func (r *AlbumRepository) Update(ctx context.Context, id string, c ports.AlbumChanges) (*domain.Album, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrAlbumNotFound
	}

	set := bson.M{}
	if c.Title != nil {
		set["title"] = *c.Title
	}
	if c.Slug != nil {
		set["slug"] = *c.Slug
	}
	if c.Description != nil {
		set["description"] = *c.Description
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAlbum
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ma)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, fmt.Errorf("update album: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *AlbumRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrAlbumNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete album: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

// AddPhoto appends photoID to the album's photo list.
func (r *AlbumRepository) AddPhoto(ctx context.Context, albumID, photoID string) error {
	return r.modifyPhotos(ctx, albumID, photoID, "$push")
}

// RemovePhoto pulls photoID from the album's photo list.
func (r *AlbumRepository) RemovePhoto(ctx context.Context, albumID, photoID string) error {
	return r.modifyPhotos(ctx, albumID, photoID, "$pull")
}

func (r *AlbumRepository) modifyPhotos(ctx context.Context, albumID, photoID, op string) error {
	aid, ok := objectID(albumID)
	if !ok {
		return domain.ErrAlbumNotFound
	}
	pid, ok := objectID(photoID)
	if !ok {
		return domain.ErrPhotoNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": aid}, bson.M{op: bson.M{"photos": pid}})
	if err != nil {
		return fmt.Errorf("album photos %s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

func (r *AlbumRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "slug", Value: 1}}},
	}
	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("albums indexes: %w", err)
	}
	return nil
}
