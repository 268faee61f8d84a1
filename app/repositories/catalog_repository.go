package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forkful/forkful/app/models"
)

type restaurantRepository struct {
	col *mongo.Collection
}

// NewRestaurantStore returns a Mongo-backed RestaurantStore.
func NewRestaurantStore(db *mongo.Database) RestaurantStore {
	return &restaurantRepository{col: db.Collection(colRestaurants)}
}

func (r *restaurantRepository) Create(ctx context.Context, rest *models.Restaurant) error {
	now := time.Now().UTC()
	rest.CreatedAt = now
	rest.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, rest)
	if err != nil {
		return mapWriteErr(err)
	}
	rest.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *restaurantRepository) FindByID(ctx context.Context, id string) (*models.Restaurant, error) {
	oid, err := parseID(id, "restaurant")
	if err != nil {
		return nil, err
	}
	var rest models.Restaurant
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&rest); err != nil {
		return nil, mapFindErr(err, "restaurant")
	}
	return &rest, nil
}

func (r *restaurantRepository) List(ctx context.Context, page, limit int) ([]models.Restaurant, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, models.ErrUpstream(err)
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, models.ErrUpstream(err)
	}
	out := []models.Restaurant{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, models.ErrUpstream(err)
	}
	return out, total, nil
}

func (r *restaurantRepository) Update(ctx context.Context, rest *models.Restaurant) error {
	rest.UpdatedAt = time.Now().UTC()
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": rest.ID}, bson.M{"$set": bson.M{
		"name":        rest.Name,
		"phoneNumber": rest.PhoneNumber,
		"email":       rest.Email,
		"info":        rest.Info,
		"addressId":   rest.AddressID,
		"updatedAt":   rest.UpdatedAt,
	}})
	if err != nil {
		return mapWriteErr(err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound("restaurant")
	}
	return nil
}

func (r *restaurantRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id, "restaurant")
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.ErrUpstream(err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound("restaurant")
	}
	return nil
}

type menuRepository struct {
	col *mongo.Collection
}

// NewMenuStore returns a Mongo-backed MenuStore.
func NewMenuStore(db *mongo.Database) MenuStore {
	return &menuRepository{col: db.Collection(colMenus)}
}

func (r *menuRepository) Create(ctx context.Context, m *models.Menu) error {
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return models.ErrUpstream(err)
	}
	m.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *menuRepository) FindByID(ctx context.Context, id string) (*models.Menu, error) {
	oid, err := parseID(id, "menu")
	if err != nil {
		return nil, err
	}
	var m models.Menu
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		return nil, mapFindErr(err, "menu")
	}
	return &m, nil
}

func (r *menuRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Menu, error) {
	oid, err := parseID(restaurantID, "restaurant")
	if err != nil {
		return nil, err
	}
	cur, err := r.col.Find(ctx, bson.M{"restaurantId": oid})
	if err != nil {
		return nil, models.ErrUpstream(err)
	}
	out := []models.Menu{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, models.ErrUpstream(err)
	}
	return out, nil
}

func (r *menuRepository) Update(ctx context.Context, m *models.Menu) error {
	m.UpdatedAt = time.Now().UTC()
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": m.ID}, bson.M{"$set": bson.M{
		"name":        m.Name,
		"description": m.Description,
		"updatedAt":   m.UpdatedAt,
	}})
	if err != nil {
		return models.ErrUpstream(err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound("menu")
	}
	return nil
}

func (r *menuRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id, "menu")
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.ErrUpstream(err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound("menu")
	}
	return nil
}

type menuItemRepository struct {
	col *mongo.Collection
}

// NewMenuItemStore returns a Mongo-backed MenuItemStore.
func NewMenuItemStore(db *mongo.Database) MenuItemStore {
	return &menuItemRepository{col: db.Collection(colMenuItems)}
}

func (r *menuItemRepository) Create(ctx context.Context, mi *models.MenuItem) error {
	now := time.Now().UTC()
	mi.CreatedAt = now
	mi.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, mi)
	if err != nil {
		return models.ErrUpstream(err)
	}
	mi.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *menuItemRepository) FindByID(ctx context.Context, id string) (*models.MenuItem, error) {
	oid, err := parseID(id, "menu item")
	if err != nil {
		return nil, err
	}
	var mi models.MenuItem
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		return nil, mapFindErr(err, "menu item")
	}
	return &mi, nil
}

func (r *menuItemRepository) ListByMenu(ctx context.Context, menuID string) ([]models.MenuItem, error) {
	oid, err := parseID(menuID, "menu")
	if err != nil {
		return nil, err
	}
	cur, err := r.col.Find(ctx, bson.M{"menuId": oid})
	if err != nil {
		return nil, models.ErrUpstream(err)
	}
	out := []models.MenuItem{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, models.ErrUpstream(err)
	}
	return out, nil
}

func (r *menuItemRepository) Update(ctx context.Context, mi *models.MenuItem) error {
	mi.UpdatedAt = time.Now().UTC()
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": mi.ID}, bson.M{"$set": bson.M{
		"name":        mi.Name,
		"price":       mi.Price,
		"description": mi.Description,
		"updatedAt":   mi.UpdatedAt,
	}})
	if err != nil {
		return models.ErrUpstream(err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound("menu item")
	}
	return nil
}

func (r *menuItemRepository) SetImageKey(ctx context.Context, id, key string) error {
	oid, err := parseID(id, "menu item")
	if err != nil {
		return err
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"imageKey":  key,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return models.ErrUpstream(err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound("menu item")
	}
	return nil
}

func (r *menuItemRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id, "menu item")
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.ErrUpstream(err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound("menu item")
	}
	return nil
}
