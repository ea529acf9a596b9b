// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/ticketboard/internal/app/store/fetchlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureFetchLog(ctx, db); err != nil {
		problems = append(problems, fetchlog.Collection+": "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureFetchLog(ctx context.Context, db *mongo.Database) error {
	start := time.Now()
	if err := fetchlog.New(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	zap.L().Info("indexes ensured",
		zap.String("collection", fetchlog.Collection),
		zap.Duration("took", time.Since(start)))
	return nil
}
