package xcontext

import (
	"context"
	"net/http"

	"github.com/zoosum-lab/backend/config"
	"github.com/zoosum-lab/backend/internal/model"
	"github.com/zoosum-lab/backend/pkg/authenticator"
	"github.com/zoosum-lab/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	configsKey     struct{}
	loggerKey      struct{}
	dbKey          struct{}
	txStatusKey    struct{}
	tokenEngineKey struct{}
	httpRequestKey struct{}
	httpWriterKey  struct{}
)

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	return ctx.Value(configsKey{}).(config.Configs)
}

func WithLogger(ctx context.Context, log logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

func Logger(ctx context.Context) logger.Logger {
	return ctx.Value(loggerKey{}).(logger.Logger)
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the database handle of this context. If the context carries an
// uncompleted transaction, the transaction is returned instead.
func DB(ctx context.Context) *gorm.DB {
	return ctx.Value(dbKey{}).(*gorm.DB)
}

type txStatus struct {
	completed bool
}

// WithDBTransaction begins a transaction and replaces the returned value of
// DB() by that transaction until it is committed or rolled back.
func WithDBTransaction(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, dbKey{}, DB(ctx).Begin())
	return context.WithValue(ctx, txStatusKey{}, &txStatus{})
}

// WithCommitDBTransaction commits the transaction carried by this context. It
// does nothing if the context carries no uncompleted transaction.
func WithCommitDBTransaction(ctx context.Context) {
	status, ok := ctx.Value(txStatusKey{}).(*txStatus)
	if !ok || status.completed {
		return
	}

	DB(ctx).Commit()
	status.completed = true
}

// WithRollbackDBTransaction rollbacks the transaction carried by this context.
// It is safe to defer this call even if the transaction was committed before.
func WithRollbackDBTransaction(ctx context.Context) {
	status, ok := ctx.Value(txStatusKey{}).(*txStatus)
	if !ok || status.completed {
		return
	}

	DB(ctx).Rollback()
	status.completed = true
}

func WithTokenEngine(ctx context.Context, engine authenticator.TokenEngine[model.AccessToken]) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine[model.AccessToken] {
	return ctx.Value(tokenEngineKey{}).(authenticator.TokenEngine[model.AccessToken])
}

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	return ctx.Value(httpRequestKey{}).(*http.Request)
}

func WithHTTPWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, httpWriterKey{}, w)
}

func HTTPWriter(ctx context.Context) http.ResponseWriter {
	return ctx.Value(httpWriterKey{}).(http.ResponseWriter)
}
