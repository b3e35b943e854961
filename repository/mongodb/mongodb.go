// Package mongodb implements the repository interfaces over MongoDB
// collections. Selected with STORAGE=mongo; the memory backend remains the
// default.
package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pushkarbw/sample-e-com-sub003/repository"
)

// Connect opens and pings a MongoDB client for the given URI.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// Repos bundles the four Mongo-backed repositories sharing one database.
type Repos struct {
	Products *ProductRepo
	Users    *UserRepo
	Carts    *CartRepo
	Orders   *OrderRepo
}

// NewRepos builds repositories over the named database.
func NewRepos(client *mongo.Client, database string) *Repos {
	db := client.Database(database)
	return &Repos{
		Products: &ProductRepo{coll: db.Collection("products")},
		Users:    &UserRepo{coll: db.Collection("users")},
		Carts:    &CartRepo{coll: db.Collection("carts")},
		Orders:   &OrderRepo{coll: db.Collection("orders")},
	}
}

// translate maps driver-level absence onto the repository sentinel.
func translate(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}
