package mongo

import (
	"context"
	"fmt"
	"time"

	"pet-adoption-api/internal/domain/adoptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdoptionsRepo struct {
	coll *mongo.Collection
}

func NewAdoptionsRepo(db *mongo.Database) *AdoptionsRepo {
	return &AdoptionsRepo{coll: db.Collection(adoptionsCollection)}
}

func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) (adoptions.Adoption, error) {
	doc := bson.M{}
	for k, v := range a.Fields {
		doc[k] = v
	}
	doc["status"] = string(a.Status)
	doc["createdAt"] = a.CreatedAt
	delete(doc, "_id")

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return adoptions.Adoption{}, fmt.Errorf("mongo: insert adoption: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return adoptions.Adoption{}, fmt.Errorf("mongo: unexpected inserted id %T", res.InsertedID)
	}

	a.ID = oid.Hex()
	return a, nil
}

func (r *AdoptionsRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo: find adoptions: %w", err)
	}

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo: decode adoptions: %w", err)
	}

	out := make([]adoptions.Adoption, 0, len(docs))
	for _, d := range docs {
		a := adoptions.Adoption{Fields: map[string]any{}}
		for k, v := range d {
			switch k {
			case "_id":
				if oid, ok := v.(primitive.ObjectID); ok {
					a.ID = oid.Hex()
				} else {
					a.ID = fmt.Sprint(v)
				}
			case "status":
				s, _ := v.(string)
				a.Status = adoptions.Status(s)
			case "createdAt":
				if dt, ok := v.(primitive.DateTime); ok {
					a.CreatedAt = dt.Time().UTC()
				} else if t, ok := v.(time.Time); ok {
					a.CreatedAt = t.UTC()
				}
			default:
				a.Fields[k] = plain(v)
			}
		}
		out = append(out, a)
	}
	return out, nil
}
