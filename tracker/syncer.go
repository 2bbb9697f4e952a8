package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/realtime"
	"github.com/yeremiapane/restaurant-client/utils"
)

// Notify surfaces a one-shot user notification, e.g. "order 12
// cancelled". Nil hooks are skipped; staff surfaces often pass nil to
// avoid alert fatigue.
type Notify func(message string)

// statusPatch is the merge payload of *_updated pushes. The backend
// may push more fields; only id and status are ever merged locally.
type statusPatch struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// idPayload is the payload of cancel/delete pushes.
type idPayload struct {
	ID uint `json:"id"`
}

// Syncer is the one sync engine shared by the kitchen, waiter and
// customer surfaces. It runs two channels against the same trackers:
// pushed events as low-latency hints and a fixed-interval poll as the
// authoritative resync. A "created" push never inserts locally; it
// kicks a full poll instead, which avoids duplicate-entry races with
// the timer.
type Syncer struct {
	Interval time.Duration

	conn *realtime.Conn
	poll func(ctx context.Context) error

	ctx     context.Context
	cancel  context.CancelFunc
	kick    chan struct{}
	done    chan struct{}
	started bool
}

// NewSyncer wires a websocket connection to a poll func. The poll
// func fetches the authoritative snapshot for the surface's scope and
// installs it via Replace on its tracker(s).
func NewSyncer(conn *realtime.Conn, interval time.Duration, poll func(ctx context.Context) error) *Syncer {
	ctx, cancel := context.WithCancel(context.Background())
	return &Syncer{
		Interval: interval,
		conn:     conn,
		poll:     poll,
		ctx:      ctx,
		cancel:   cancel,
		kick:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// WatchOrders subscribes the order events for the connection's room.
func (s *Syncer) WatchOrders(t *OrderTracker, notify Notify) {
	s.conn.On(realtime.EventOrderCreated, func(json.RawMessage) {
		s.Resync()
	})
	s.conn.On(realtime.EventOrderUpdated, func(data json.RawMessage) {
		var patch statusPatch
		if err := json.Unmarshal(data, &patch); err != nil {
			utils.ErrorLogger.Printf("syncer: bad order_updated payload: %v", err)
			return
		}
		t.ApplyStatus(patch.ID, patch.Status)
	})
	s.conn.On(realtime.EventOrderCancelled, func(data json.RawMessage) {
		var payload idPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			utils.ErrorLogger.Printf("syncer: bad order_cancelled payload: %v", err)
			return
		}
		if t.Remove(payload.ID) && notify != nil {
			notify(fmt.Sprintf("Order #%d was cancelled", payload.ID))
		}
	})
}

// WatchCalls subscribes the waiter-call events.
func (s *Syncer) WatchCalls(t *CallTracker, notify Notify) {
	s.conn.On(realtime.EventCallCreated, func(json.RawMessage) {
		s.Resync()
	})
	s.conn.On(realtime.EventCallUpdated, func(data json.RawMessage) {
		var patch statusPatch
		if err := json.Unmarshal(data, &patch); err != nil {
			utils.ErrorLogger.Printf("syncer: bad call_updated payload: %v", err)
			return
		}
		t.ApplyStatus(patch.ID, patch.Status)
	})
	s.conn.On(realtime.EventCallDeleted, func(data json.RawMessage) {
		var payload idPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			utils.ErrorLogger.Printf("syncer: bad call_deleted payload: %v", err)
			return
		}
		if t.Remove(payload.ID) && notify != nil {
			notify(fmt.Sprintf("Call #%d was closed", payload.ID))
		}
	})
}

// Start opens the transport and begins the poll loop with an
// immediate first poll.
func (s *Syncer) Start() {
	s.started = true
	s.conn.Start()
	go s.loop()
}

func (s *Syncer) loop() {
	defer close(s.done)

	s.runPoll()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runPoll()
		case <-s.kick:
			s.runPoll()
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Syncer) runPoll() {
	if err := s.poll(s.ctx); err != nil {
		if s.ctx.Err() != nil {
			// Stopped mid-flight; the stale response is dropped.
			return
		}
		utils.ErrorLogger.Printf("syncer: poll failed: %v", err)
	}
}

// Resync requests an out-of-band poll. Coalesces when one is already
// pending.
func (s *Syncer) Resync() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Stop cancels the poll loop, drops any in-flight poll response and
// closes the transport. No event fires after Stop returns.
func (s *Syncer) Stop() {
	s.cancel()
	s.conn.Close()
	if s.started {
		<-s.done
	}
}

// OrderPoll builds a poll func replacing the tracker's list from a
// snapshot fetch.
func OrderPoll(t *OrderTracker, fetch func(ctx context.Context) ([]models.OrderView, error)) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		orders, err := fetch(ctx)
		if err != nil {
			return err
		}
		t.Replace(orders)
		return nil
	}
}

// CallPoll is OrderPoll for waiter calls.
func CallPoll(t *CallTracker, fetch func(ctx context.Context) ([]models.WaiterCallView, error)) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		calls, err := fetch(ctx)
		if err != nil {
			return err
		}
		t.Replace(calls)
		return nil
	}
}

// CombinePolls runs several poll funcs as one; the waiter surface
// polls orders and calls together.
func CombinePolls(polls ...func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		for _, poll := range polls {
			if err := poll(ctx); err != nil {
				return err
			}
		}
		return nil
	}
}
