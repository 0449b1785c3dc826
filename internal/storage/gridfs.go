// Package storage holds the object-storage backend for listing images.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoClient connects and pings the Mongo deployment backing GridFS.
func NewMongoClient(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// GridFSImageStore keeps listing images in a GridFS bucket and hands out
// references that resolve through the image endpoint.
type GridFSImageStore struct {
	DB *mongo.Database
}

func NewGridFSImageStore(client *mongo.Client, dbName string) *GridFSImageStore {
	return &GridFSImageStore{DB: client.Database(dbName)}
}

// Upload stores raw image bytes and returns the reference URL to serve them
// from. Non-image payloads are rejected before anything is written.
func (s *GridFSImageStore) Upload(data []byte, filename string) (string, error) {
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("unsupported file type %s", mt.String())
	}

	bucket, err := gridfs.NewBucket(s.DB)
	if err != nil {
		return "", err
	}

	name := uuid.New().String() + mt.Extension()
	stream, err := bucket.OpenUploadStream(name)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	if _, err := io.Copy(stream, bytes.NewReader(data)); err != nil {
		return "", err
	}

	return "/api/images/" + stream.FileID.(primitive.ObjectID).Hex(), nil
}

// Download returns the stored bytes for a previously uploaded image id.
func (s *GridFSImageStore) Download(imageID string) ([]byte, error) {
	bucket, err := gridfs.NewBucket(s.DB)
	if err != nil {
		return nil, err
	}

	objID, err := primitive.ObjectIDFromHex(imageID)
	if err != nil {
		return nil, fmt.Errorf("invalid image id: %w", err)
	}

	stream, err := bucket.OpenDownloadStream(objID)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	return io.ReadAll(stream)
}
