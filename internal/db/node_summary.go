package db

import (
	"context"
	"errors"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nymtech/nym-explorer-indexer/internal/db/model"
)

func (db *Database) UpsertNodeSummaries(ctx context.Context, docs []*model.NodeSummaryDocument) error {
	if len(docs) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(docs))
	for _, doc := range docs {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": doc.NodeID}).
			SetReplacement(doc).
			SetUpsert(true))
	}

	_, err := db.collection(model.NodeSummaryCollection).
		BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return newDuplicateKeyError("identity_key", err)
		}
		return err
	}

	return nil
}

func (db *Database) DeleteNodeSummariesExcept(ctx context.Context, keep []uint32) (int64, error) {
	if keep == nil {
		keep = []uint32{}
	}
	filter := bson.M{"_id": bson.M{"$nin": keep}}

	res, err := db.collection(model.NodeSummaryCollection).DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}

	return res.DeletedCount, nil
}

func (db *Database) GetNodeSummary(ctx context.Context, nodeID uint32) (*model.NodeSummaryDocument, error) {
	res := db.collection(model.NodeSummaryCollection).FindOne(ctx, bson.M{"_id": nodeID})

	var doc model.NodeSummaryDocument
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Collection: model.NodeSummaryCollection,
				Key:        strconv.FormatUint(uint64(nodeID), 10),
			}
		}
		return nil, err
	}

	return &doc, nil
}

// ListNodeSummaries returns every stored summary ordered by node id.
func (db *Database) ListNodeSummaries(ctx context.Context) ([]*model.NodeSummaryDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := db.collection(model.NodeSummaryCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*model.NodeSummaryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}
