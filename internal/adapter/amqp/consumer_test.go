package amqpadapter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"dfp-sync/internal/config/configs"
	"dfp-sync/internal/core/domain"
	"dfp-sync/internal/core/port"
	"dfp-sync/internal/core/port/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type settlement struct {
	tag     uint64
	acked   bool
	requeue bool
}

type fakeAcknowledger struct {
	mu      sync.Mutex
	settled []settlement
}

func (a *fakeAcknowledger) Ack(tag uint64, _ bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.settled = append(a.settled, settlement{tag: tag, acked: true})
	return nil
}

func (a *fakeAcknowledger) Nack(tag uint64, _ bool, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.settled = append(a.settled, settlement{tag: tag, requeue: requeue})
	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func (a *fakeAcknowledger) results() []settlement {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]settlement(nil), a.settled...)
}

const upsertMessage = `{
	"action": "upsert",
	"user": {"id": 3, "name": "advertiser", "fullname": "t2_3"},
	"campaign": {
		"id": 42,
		"fullname": "t8_16",
		"link_id": "abc123",
		"start_date": "2024-01-01T00:00:00Z",
		"end_date": "2024-01-31T00:00:00Z",
		"priority": "standard",
		"platform": "mobile",
		"cpm": 500,
		"impressions": 100000
	}
}`

const deactivateMessage = `{"action": "deactivate", "campaign": {"fullname": "t8_16"}}`

func newTestConsumer(t *testing.T) (*Consumer, *mocks.MockLineItemUseCase) {
	t.Helper()
	svc := mocks.NewMockLineItemUseCase(t)
	return NewConsumer(svc, slog.New(slog.NewTextHandler(io.Discard, nil))), svc
}

func delivery(ack amqp.Acknowledger, tag uint64, body string) amqp.Delivery {
	return amqp.Delivery{Acknowledger: ack, DeliveryTag: tag, Body: []byte(body)}
}

func TestHandle_Settlement(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		setup func(svc *mocks.MockLineItemUseCase)
		want  settlement
	}{
		{
			name: "upsert ok",
			body: upsertMessage,
			setup: func(svc *mocks.MockLineItemUseCase) {
				svc.EXPECT().
					UpsertLineItem(mock.Anything, domain.User{ID: 3, Name: "advertiser", Fullname: "t2_3"}, mock.AnythingOfType("domain.Campaign")).
					Return(domain.Record{"id": 7}, nil)
			},
			want: settlement{tag: 1, acked: true},
		},
		{
			name: "deactivate ok",
			body: deactivateMessage,
			setup: func(svc *mocks.MockLineItemUseCase) {
				svc.EXPECT().
					Deactivate(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool { return c.Fullname == "t8_16" })).
					Return(true, nil)
			},
			want: settlement{tag: 1, acked: true},
		},
		{
			name: "malformed json dropped",
			body: `{"action":`,
			want: settlement{tag: 1, acked: true},
		},
		{
			name: "unknown action dropped",
			body: `{"action": "pause", "campaign": {"fullname": "t8_16"}}`,
			want: settlement{tag: 1, acked: true},
		},
		{
			name: "invalid campaign dropped",
			body: `{"action": "upsert", "user": {"name": "a", "fullname": "t2_3"}, "campaign": {"fullname": "t8_16"}}`,
			want: settlement{tag: 1, acked: true},
		},
		{
			name: "archived dropped",
			body: upsertMessage,
			setup: func(svc *mocks.MockLineItemUseCase) {
				svc.EXPECT().UpsertLineItem(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, &domain.ArchivedLineItemError{LineItemID: 7, CampaignID: 42})
			},
			want: settlement{tag: 1, acked: true},
		},
		{
			name: "remote failure requeued",
			body: upsertMessage,
			setup: func(svc *mocks.MockLineItemUseCase) {
				svc.EXPECT().UpsertLineItem(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, port.ErrRemoteUnavailable)
			},
			want: settlement{tag: 1, requeue: true},
		},
		{
			name: "deactivate rate limited requeued",
			body: deactivateMessage,
			setup: func(svc *mocks.MockLineItemUseCase) {
				svc.EXPECT().Deactivate(mock.Anything, mock.Anything).Return(false, port.ErrRemoteRateLimited)
			},
			want: settlement{tag: 1, requeue: true},
		},
		{
			name: "unexpected error dropped",
			body: deactivateMessage,
			setup: func(svc *mocks.MockLineItemUseCase) {
				svc.EXPECT().Deactivate(mock.Anything, mock.Anything).Return(false, errors.New("boom"))
			},
			want: settlement{tag: 1, acked: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, svc := newTestConsumer(t)
			if tt.setup != nil {
				tt.setup(svc)
			}
			ack := &fakeAcknowledger{}

			c.Handle(context.Background(), delivery(ack, 1, tt.body))

			assert.Equal(t, []settlement{tt.want}, ack.results())
		})
	}
}

func TestRun_DrainsUntilClosed(t *testing.T) {
	c, svc := newTestConsumer(t)
	svc.EXPECT().Deactivate(mock.Anything, mock.Anything).Return(false, nil).Times(2)

	ack := &fakeAcknowledger{}
	deliveries := make(chan amqp.Delivery, 3)
	deliveries <- delivery(ack, 1, deactivateMessage)
	deliveries <- delivery(ack, 2, `not json`)
	deliveries <- delivery(ack, 3, deactivateMessage)
	close(deliveries)

	require.NoError(t, c.Run(context.Background(), deliveries))
	assert.Equal(t, []settlement{
		{tag: 1, acked: true},
		{tag: 2, acked: true},
		{tag: 3, acked: true},
	}, ack.results())
}

func TestRun_StopsOnCancel(t *testing.T) {
	c, _ := newTestConsumer(t)
	ctx, cancel := context.WithCancel(context.Background())
	deliveries := make(chan amqp.Delivery)

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, deliveries) }()
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
}

type fakeChannel struct {
	declared string
	prefetch int
	autoAck  bool
	msgs     chan amqp.Delivery
	err      error
}

func (f *fakeChannel) Qos(prefetchCount, _ int, _ bool) error {
	f.prefetch = prefetchCount
	return nil
}

func (f *fakeChannel) QueueDeclare(name string, durable, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	if f.err != nil {
		return amqp.Queue{}, f.err
	}
	if durable {
		f.declared = name
	}
	return amqp.Queue{Name: name}, nil
}

func (f *fakeChannel) Consume(_ string, _ string, autoAck, _, _, _ bool, _ amqp.Table) (<-chan amqp.Delivery, error) {
	f.autoAck = autoAck
	return f.msgs, nil
}

func TestSubscribe(t *testing.T) {
	ch := &fakeChannel{msgs: make(chan amqp.Delivery)}

	msgs, err := Subscribe(ch, configs.AMQP{Queue: "campaign_sync", Prefetch: 4})
	require.NoError(t, err)

	assert.NotNil(t, msgs)
	assert.Equal(t, "campaign_sync", ch.declared)
	assert.Equal(t, 4, ch.prefetch)
	assert.False(t, ch.autoAck)
}

func TestSubscribe_DeclareError(t *testing.T) {
	ch := &fakeChannel{err: amqp.ErrClosed}

	_, err := Subscribe(ch, configs.AMQP{Queue: "campaign_sync"})

	assert.ErrorIs(t, err, amqp.ErrClosed)
}
