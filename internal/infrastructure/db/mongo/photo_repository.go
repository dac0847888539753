package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/albumhub/album-api/internal/core/domain"
	"github.com/albumhub/album-api/internal/core/ports"
)

const collectionPhotos = "photos"

type PhotoRepository struct {
	col *mongo.Collection
}

func NewPhotoRepository(db *mongo.Database) *PhotoRepository {
	return &PhotoRepository{col: db.Collection(collectionPhotos)}
}

type mongoPhoto struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	AlbumID     primitive.ObjectID `bson:"album_id"`
	Title       string             `bson:"title"`
	URL         string             `bson:"url"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (m *mongoPhoto) toDomain() *domain.Photo {
	return &domain.Photo{
		ID:          m.ID.Hex(),
		AlbumID:     m.AlbumID.Hex(),
		Title:       m.Title,
		URL:         m.URL,
		Description: m.Description,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

// scope builds the album-scoped filter for a single photo.
func scope(albumID, photoID string) (bson.M, bool) {
	aid, ok := objectID(albumID)
	if !ok {
		return nil, false
	}
	pid, ok := objectID(photoID)
	if !ok {
		return nil, false
	}
	return bson.M{"_id": pid, "album_id": aid}, true
}

func (r *PhotoRepository) Create(ctx context.Context, p *domain.Photo) (*domain.Photo, error) {
	aid, ok := objectID(p.AlbumID)
	if !ok {
		return nil, domain.ErrAlbumNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPhoto{
		ID:          primitive.NewObjectID(),
		AlbumID:     aid,
		Title:       p.Title,
		URL:         p.URL,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert photo: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PhotoRepository) FindInAlbum(ctx context.Context, albumID, photoID string) (*domain.Photo, error) {
	filter, ok := scope(albumID, photoID)
	if !ok {
		return nil, domain.ErrPhotoNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPhoto
	if err := r.col.FindOne(ctx, filter).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("find photo: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PhotoRepository) ListByAlbums(ctx context.Context, albumIDs ...string) ([]*domain.Photo, error) {
	ids := objectIDs(albumIDs)
	if len(ids) == 0 {
		return []*domain.Photo{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"album_id": bson.M{"$in": ids}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find photos: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoPhoto
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode photos: %w", err)
	}

	photos := make([]*domain.Photo, 0, len(docs))
	for i := range docs {
		photos = append(photos, docs[i].toDomain())
	}
	return photos, nil
}

func (r *PhotoRepository) Update(ctx context.Context, albumID, photoID string, c ports.PhotoChanges) (*domain.Photo, error) {
	filter, ok := scope(albumID, photoID)
	if !ok {
		return nil, domain.ErrPhotoNotFound
	}

	set := bson.M{}
	if c.Title != nil {
		set["title"] = *c.Title
	}
	if c.URL != nil {
		set["url"] = *c.URL
	}
	if c.Description != nil {
		set["description"] = *c.Description
	}
	if len(set) == 0 {
		return r.FindInAlbum(ctx, albumID, photoID)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPhoto
	err := r.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("update photo: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PhotoRepository) Delete(ctx context.Context, albumID, photoID string) error {
	filter, ok := scope(albumID, photoID)
	if !ok {
		return domain.ErrPhotoNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func (r *PhotoRepository) DeleteByAlbum(ctx context.Context, albumID string) error {
	aid, ok := objectID(albumID)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"album_id": aid}); err != nil {
		return fmt.Errorf("delete album photos: %w", err)
	}
	return nil
}

func (r *PhotoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "album_id", Value: 1}, {Key: "created_at", Value: 1}}},
	}
	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("photos indexes: %w", err)
	}
	return nil
}
