package database

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens a client and verifies the connection with a ping before the
// server starts taking traffic.
func Connect(uri string) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to MongoDB")
	}

	if err := client.Ping(ctx, nil); err != nil {
		logrus.WithError(err).Fatal("could not ping MongoDB")
	}

	logrus.Info("connected to MongoDB")
	return client
}
