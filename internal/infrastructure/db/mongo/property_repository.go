package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stayhaven/booking-system/internal/core/domain"
)

const collectionProperties = "properties"

// PropertyRepository implements ports.PropertyRepository using MongoDB.
type PropertyRepository struct {
	col *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{col: db.Collection(collectionProperties)}
}

type propertyDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID       primitive.ObjectID `bson:"owner_id"`
	Title         string             `bson:"title"`
	Description   string             `bson:"description,omitempty"`
	City          string             `bson:"city"`
	Country       string             `bson:"country"`
	PricePerNight float64            `bson:"price_per_night"`
	MaxGuests     int                `bson:"max_guests"`
	Active        bool               `bson:"active"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (d propertyDoc) toDomain() *domain.Property {
	return &domain.Property{
		ID:            d.ID.Hex(),
		OwnerID:       d.OwnerID.Hex(),
		Title:         d.Title,
		Description:   d.Description,
		City:          d.City,
		Country:       d.Country,
		PricePerNight: d.PricePerNight,
		MaxGuests:     d.MaxGuests,
		Active:        d.Active,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

func toPropertyDoc(p *domain.Property) (propertyDoc, error) {
	ownerID, err := objectID(p.OwnerID, domain.ErrUserNotFound)
	if err != nil {
		return propertyDoc{}, err
	}
	return propertyDoc{
		OwnerID:       ownerID,
		Title:         p.Title,
		Description:   p.Description,
		City:          p.City,
		Country:       p.Country,
		PricePerNight: p.PricePerNight,
		MaxGuests:     p.MaxGuests,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}, nil
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	doc, err := toPropertyDoc(p)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	oid, err := objectID(id, domain.ErrPropertyNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc propertyDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Property, error) {
	oid, err := objectID(ownerID, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, bson.M{"owner_id": oid})
}

func (r *PropertyRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Property, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	return r.list(ctx, filter)
}

func (r *PropertyRepository) list(ctx context.Context, filter bson.M) ([]*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	properties := []*domain.Property{}
	for cur.Next(ctx) {
		var doc propertyDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		properties = append(properties, doc.toDomain())
	}
	return properties, cur.Err()
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	oid, err := objectID(p.ID, domain.ErrPropertyNotFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":           p.Title,
		"description":     p.Description,
		"city":            p.City,
		"country":         p.Country,
		"price_per_night": p.PricePerNight,
		"max_guests":      p.MaxGuests,
		"active":          p.Active,
		"updated_at":      p.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the properties collection.
func (r *PropertyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "active", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
