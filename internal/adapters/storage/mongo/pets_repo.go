package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"pet-adoption-api/internal/domain/pets"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PetsRepo struct {
	coll *mongo.Collection
}

func NewPetsRepo(db *mongo.Database) *PetsRepo {
	return &PetsRepo{coll: db.Collection(petsCollection)}
}

// petDoc es el documento tal cual vive en la colección: campos fijos más
// los atributos libres al mismo nivel (inline).
type petDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Images     []string           `bson:"images"`
	Status     string             `bson:"status"`
	PetType    string             `bson:"petType,omitempty"`
	Location   string             `bson:"location,omitempty"`
	Age        int                `bson:"age"`
	Vaccinated bool               `bson:"vaccinated"`
	Neutered   bool               `bson:"neutered"`
	CreatedAt  time.Time          `bson:"createdAt"`
	Extra      bson.M             `bson:",inline"`
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	doc := petDoc{
		Images:     p.Images,
		Status:     string(p.Status),
		PetType:    p.PetType,
		Location:   p.Location,
		Age:        p.Age,
		Vaccinated: p.Vaccinated,
		Neutered:   p.Neutered,
		CreatedAt:  p.CreatedAt,
		Extra:      extraFields(p.Attributes),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return pets.Pet{}, fmt.Errorf("mongo: insert pet: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return pets.Pet{}, fmt.Errorf("mongo: unexpected inserted id %T", res.InsertedID)
	}

	p.ID = oid.Hex()
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return pets.Pet{}, pets.ErrInvalidID
	}

	var doc petDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("mongo: find pet: %w", err)
	}
	return doc.toPet(), nil
}

func (r *PetsRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	q := bson.M{}
	if filter.Status != "" {
		q["status"] = string(filter.Status)
	}
	if filter.PetType != "" {
		q["petType"] = filter.PetType
	}
	if filter.Location != "" {
		q["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Location), Options: "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.coll.Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo: find pets: %w", err)
	}

	var docs []petDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo: decode pets: %w", err)
	}

	out := make([]pets.Pet, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toPet())
	}
	return out, nil
}

func (r *PetsRepo) UpdateStatus(ctx context.Context, id string, status pets.Status) (pets.Pet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return pets.Pet{}, pets.ErrInvalidID
	}

	var doc petDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("mongo: update pet status: %w", err)
	}
	return doc.toPet(), nil
}

func (d petDoc) toPet() pets.Pet {
	attrs := make(map[string]any, len(d.Extra))
	for k, v := range d.Extra {
		attrs[k] = plain(v)
	}
	return pets.Pet{
		ID:         d.ID.Hex(),
		Images:     d.Images,
		Status:     pets.Status(d.Status),
		PetType:    d.PetType,
		Location:   d.Location,
		Age:        d.Age,
		Vaccinated: d.Vaccinated,
		Neutered:   d.Neutered,
		Attributes: attrs,
		CreatedAt:  d.CreatedAt.UTC(),
	}
}

// extraFields descarta claves que chocarían con los campos fijos del documento.
func extraFields(attrs map[string]any) bson.M {
	out := bson.M{}
	for k, v := range attrs {
		switch k {
		case "_id", "images", "status", "petType", "location", "age", "vaccinated", "neutered", "createdAt":
			continue
		}
		out[k] = v
	}
	return out
}
