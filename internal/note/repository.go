package note

import (
	"fmt"

	"github.com/ferdiebergado/jobnotes/internal/platform/db"
	"github.com/google/uuid"
)

// NewRepository returns the note store matching the connection's driver.
func NewRepository(conn *db.Conn) (Repository, error) {
	switch conn.Driver {
	case db.DriverMongo:
		return NewMongoRepository(conn.Mongo), nil
	case db.DriverPostgres:
		return NewPostgresRepository(conn.SQL), nil
	case db.DriverDynamo:
		return NewDynamoRepository(conn.Dynamo, conn.Table)
	case db.DriverFile:
		return NewFileRepository(conn.FilePath), nil
	default:
		return nil, fmt.Errorf("%w: no note store for driver %q", db.ErrConfiguration, conn.Driver)
	}
}

// canonicalID parses a uuid id in any accepted spelling and returns the
// lowercase hyphenated form the uuid stores keep. Unparsable ids are not valid.
func canonicalID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
