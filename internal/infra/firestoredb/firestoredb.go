// Package firestoredb contains the concrete implementation of the
// persistence layer on Cloud Firestore.
package firestoredb

import (
	"context"
	"log/slog"

	"agenda/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

const (
	usersCollection    = "users"
	contactsCollection = "contacts"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// New creates the Firestore client from the shared Firebase app.
func New(params Params) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}
