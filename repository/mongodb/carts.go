package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pushkarbw/sample-e-com-sub003/models"
	"github.com/pushkarbw/sample-e-com-sub003/repository"
)

// CartRepo is a Mongo-backed CartRepository. Each cart item is its own
// document; the (user, product) uniqueness invariant is enforced by the
// service layer.
type CartRepo struct {
	coll *mongo.Collection
}

func (r *CartRepo) ItemsByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "added_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepo) Get(ctx context.Context, id string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *CartRepo) GetByUserAndProduct(ctx context.Context, userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	filter := bson.M{"user_id": userID, "product_id": productID}
	if err := r.coll.FindOne(ctx, filter).Decode(&item); err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *CartRepo) Create(ctx context.Context, item *models.CartItem) error {
	_, err := r.coll.InsertOne(ctx, item)
	return err
}

func (r *CartRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"quantity": quantity},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CartRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CartRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
