package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nymtech/nym-explorer-indexer/internal/db/model"
)

const networkSnapshotID = "singleton"

type networkSnapshotDoc struct {
	ID                             string `bson:"_id"`
	*model.NetworkSnapshotDocument `bson:",inline"`
}

func (db *Database) GetNetworkSnapshot(ctx context.Context) (*model.NetworkSnapshotDocument, error) {
	filter := bson.M{"_id": networkSnapshotID}
	res := db.collection(model.NetworkSnapshotCollection).FindOne(ctx, filter)

	var doc networkSnapshotDoc
	err := res.Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Collection: model.NetworkSnapshotCollection,
				Key:        networkSnapshotID,
			}
		}
		return nil, err
	}

	return doc.NetworkSnapshotDocument, nil
}

func (db *Database) UpsertNetworkSnapshot(ctx context.Context, snapshot *model.NetworkSnapshotDocument) error {
	doc := networkSnapshotDoc{
		ID:                      networkSnapshotID,
		NetworkSnapshotDocument: snapshot,
	}

	filter := bson.M{"_id": networkSnapshotID}
	_, err := db.collection(model.NetworkSnapshotCollection).
		ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	return err
}
