package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/product"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database/dbtest"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database/po"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/retry"
)

type recordingPublisher struct {
	kinds    []string
	payloads []string
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, kind, payload string) error {
	if p.err != nil {
		return p.err
	}
	p.kinds = append(p.kinds, kind)
	p.payloads = append(p.payloads, payload)
	return nil
}

func productCreated() shared.Event {
	return shared.NewEvent(product.EventKindCreated, product.CreatedPayload{ID: "p1", Name: "Product 1", Price: 10})
}

func TestOutboxSaveEvent(t *testing.T) {
	ctx := context.Background()
	repo := database.NewOutboxRepository(dbtest.Open(t))

	require.NoError(t, repo.SaveEvent(ctx, productCreated()))

	events, err := repo.GetPendingEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, product.EventKindCreated, events[0].EventKind)

	data, err := events[0].ToEventData()
	require.NoError(t, err)
	assert.Equal(t, "ProductCreated", data["kind"])
	assert.Equal(t, map[string]interface{}{"id": "p1", "name": "Product 1", "price": 10.0}, data["payload"])
}

func TestOutboxSaveEventRollsBackWithUnitOfWork(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := database.NewOutboxRepository(db)
	boom := errors.New("boom")

	err := database.NewUnitOfWork(db).Execute(ctx, func(ctx context.Context) error {
		require.NoError(t, repo.SaveEvent(ctx, productCreated()))
		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := repo.CountByStatus(ctx, po.EventStatusPending)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOutboxWorkerPublishes(t *testing.T) {
	ctx := context.Background()
	repo := database.NewOutboxRepository(dbtest.Open(t))
	require.NoError(t, repo.SaveEvent(ctx, productCreated()))
	require.NoError(t, repo.SaveEvent(ctx, productCreated()))

	publisher := &recordingPublisher{}
	worker, err := database.NewOutboxWorker(repo, publisher, 10, 10, 3)
	require.NoError(t, err)

	published, err := worker.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, published)
	assert.Equal(t, []string{"ProductCreated", "ProductCreated"}, publisher.kinds)

	count, err := repo.CountByStatus(ctx, po.EventStatusPublished)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	published, err = worker.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Zero(t, published)
}

func TestOutboxWorkerMarksFailures(t *testing.T) {
	ctx := context.Background()
	repo := database.NewOutboxRepository(dbtest.Open(t))
	require.NoError(t, repo.SaveEvent(ctx, productCreated()))

	worker, err := database.NewOutboxWorker(repo, &recordingPublisher{err: errors.New("redis down")}, 10, 10, 2)
	require.NoError(t, err)
	worker.SetPublishRetry(retry.Config{Enabled: false})

	_, err = worker.ProcessBatch(ctx)
	require.NoError(t, err)
	pending, err := repo.CountByStatus(ctx, po.EventStatusPending)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pending)

	_, err = worker.ProcessBatch(ctx)
	require.NoError(t, err)
	failed, err := repo.CountByStatus(ctx, po.EventStatusFailed)
	require.NoError(t, err)
	assert.EqualValues(t, 1, failed)
}

func TestNewOutboxWorkerValidation(t *testing.T) {
	repo := database.NewOutboxRepository(dbtest.Open(t))

	_, err := database.NewOutboxWorker(nil, &recordingPublisher{}, 1, 1, 1)
	assert.Error(t, err)
	_, err = database.NewOutboxWorker(repo, nil, 1, 1, 1)
	assert.Error(t, err)
	_, err = database.NewOutboxWorker(repo, &recordingPublisher{}, 0, 1, 1)
	assert.Error(t, err)
	_, err = database.NewOutboxWorker(repo, &recordingPublisher{}, 1, 0, 1)
	assert.Error(t, err)
	_, err = database.NewOutboxWorker(repo, &recordingPublisher{}, 1, 1, 0)
	assert.Error(t, err)
}

func TestRedisPublisherReportsConnectionErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	err := database.NewRedisPublisher(client, "shop.events").Publish(context.Background(), "ProductCreated", "{}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish ProductCreated to shop.events")
}
