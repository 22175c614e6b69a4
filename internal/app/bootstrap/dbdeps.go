// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fpl-indonesia/direktori/internal/app/ingest"
	sugstore "github.com/fpl-indonesia/direktori/internal/app/store/suggestions"
)

// DBDeps holds the data backends for the app: the aggregated directory
// dataset (loaded once, immutable for the process lifetime) and the
// suggestion store. Mongo fields are nil on the CSV backend.
type DBDeps struct {
	Dataset     *ingest.Dataset
	Suggestions sugstore.Store

	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
}
