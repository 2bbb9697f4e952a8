package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/restaurant-client/api"
	"github.com/yeremiapane/restaurant-client/cart"
	"github.com/yeremiapane/restaurant-client/config"
	"github.com/yeremiapane/restaurant-client/localstore"
	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/realtime"
	"github.com/yeremiapane/restaurant-client/tracker"
	"github.com/yeremiapane/restaurant-client/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	surface := flag.String("surface", "customer", "Surface to run: customer|kitchen|waiter")
	flag.Parse()

	cfg := config.Load()
	store := localstore.Open(cfg.StorePath)

	switch *surface {
	case "customer":
		runCustomer(cfg, store)
	case "kitchen":
		runKitchen(cfg, store)
	case "waiter":
		runWaiter(cfg, store)
	default:
		utils.ErrorLogger.Fatalf("unknown surface %q", *surface)
	}
}

// deviceID returns the stable per-device identifier, minting one on
// first run.
func deviceID(store *localstore.Store) string {
	if id, ok := store.Get(localstore.KeyDeviceID); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	store.Put(localstore.KeyDeviceID, id)
	return id
}

func notifyUser(message string) {
	utils.InfoLogger.Printf("NOTICE: %s", message)
}

func runCustomer(cfg config.Config, store *localstore.Store) {
	if cfg.TableCode == "" {
		utils.ErrorLogger.Fatal("TABLE_CODE is required for the customer surface")
	}

	client := api.NewCustomerClient(cfg.ServerBaseURL)
	ctx := context.Background()

	session, err := client.OpenSession(ctx, api.OpenSessionRequest{
		TenantID:     cfg.TenantID,
		RestaurantID: cfg.RestaurantID,
		TableCode:    cfg.TableCode,
		DeviceID:     deviceID(store),
	})
	if err != nil {
		utils.ErrorLogger.Fatalf("open session: %v", err)
	}
	utils.InfoLogger.Printf("Session %d open on table %s", session.ID, session.TableCode)

	basket := cart.NewStore(store)
	if n := basket.ItemCount(); n > 0 {
		utils.InfoLogger.Printf("Restored cart with %d item(s), total %s",
			n, utils.FormatCurrency(basket.GrandTotal()))
	}

	orders := tracker.NewOrderTracker()
	room := realtime.CustomerRoom(cfg.TenantID, cfg.RestaurantID, cfg.TableCode)
	conn := realtime.NewConn(cfg.WSURL, room, cfg.WSMaxRetries, cfg.WSRetryDelay)
	syncer := tracker.NewSyncer(conn, cfg.PollInterval, tracker.OrderPoll(orders, func(ctx context.Context) ([]models.OrderView, error) {
		return client.OrdersByTable(ctx, session.TableID)
	}))
	syncer.WatchOrders(orders, notifyUser)
	syncer.Start()
	defer syncer.Stop()

	renderLoop(cfg, func() {
		renderOrders(cfg, orders.Orders())
	})
}

// staffLogin makes sure the staff client holds a usable token, logging
// in with env credentials when the stored one is missing or stale.
func staffLogin(client *api.StaffClient) {
	if client.HasValidToken() {
		if user, ok := client.CachedProfile(); ok {
			utils.InfoLogger.Printf("Using stored credentials for %s", user.Email)
		}
		return
	}
	email := os.Getenv("STAFF_EMAIL")
	password := os.Getenv("STAFF_PASSWORD")
	user, err := client.Login(context.Background(), email, password)
	if err != nil {
		utils.ErrorLogger.Fatalf("staff login: %v", err)
	}
	utils.InfoLogger.Printf("Logged in as %s (%s)", user.Email, user.Role)
}

func runKitchen(cfg config.Config, store *localstore.Store) {
	client := api.NewStaffClient(cfg.ServerBaseURL, store, func() {
		utils.ErrorLogger.Fatal("session expired, please log in again")
	})
	staffLogin(client)

	orders := tracker.NewOrderTracker()
	room := realtime.KitchenRoom(cfg.RestaurantID, cfg.KitchenStation)
	conn := realtime.NewConn(cfg.WSURL, room, cfg.WSMaxRetries, cfg.WSRetryDelay)
	syncer := tracker.NewSyncer(conn, cfg.PollInterval, tracker.OrderPoll(orders, func(ctx context.Context) ([]models.OrderView, error) {
		return client.OrdersByRestaurant(ctx, cfg.RestaurantID, api.OrderFilter{
			Statuses: tracker.ActiveStatuses,
			Limit:    100,
		})
	}))
	// Kitchen skips per-event notices; the board itself is the signal.
	syncer.WatchOrders(orders, nil)
	syncer.Start()
	defer syncer.Stop()

	renderLoop(cfg, func() {
		renderOrders(cfg, orders.Orders())
	})
}

func runWaiter(cfg config.Config, store *localstore.Store) {
	client := api.NewStaffClient(cfg.ServerBaseURL, store, func() {
		utils.ErrorLogger.Fatal("session expired, please log in again")
	})
	staffLogin(client)

	orders := tracker.NewOrderTracker()
	calls := tracker.NewCallTracker()
	room := realtime.RestaurantRoom(cfg.RestaurantID)
	conn := realtime.NewConn(cfg.WSURL, room, cfg.WSMaxRetries, cfg.WSRetryDelay)

	poll := tracker.CombinePolls(
		tracker.OrderPoll(orders, func(ctx context.Context) ([]models.OrderView, error) {
			return client.OrdersByRestaurant(ctx, cfg.RestaurantID, api.OrderFilter{Limit: 200})
		}),
		tracker.CallPoll(calls, func(ctx context.Context) ([]models.WaiterCallView, error) {
			return client.CallsByRestaurant(ctx, cfg.RestaurantID)
		}),
	)
	syncer := tracker.NewSyncer(conn, cfg.PollInterval, poll)
	syncer.WatchOrders(orders, nil)
	syncer.WatchCalls(calls, notifyUser)
	syncer.Start()
	defer syncer.Stop()

	renderLoop(cfg, func() {
		for _, group := range tracker.GroupByTable(orders.Orders()) {
			utils.InfoLogger.Printf("Table %s (%s): %d order(s)",
				group.Table.Name, group.Table.Code, len(group.Orders))
		}
		for _, call := range calls.Calls() {
			utils.InfoLogger.Printf("Call #%d [%s] %s table %s: %s",
				call.ID, call.Status, call.Type, call.Table.Name, call.Note)
		}
	})
}

func renderOrders(cfg config.Config, orders []models.OrderView) {
	now := time.Now()
	for _, order := range orders {
		utils.InfoLogger.Printf("Order #%d [%s] table %s, %dm (%s), %d%%, total %s",
			order.ID,
			order.Status,
			order.Table.Name,
			models.ElapsedMinutes(order.CreatedAt, now),
			tracker.Urgency(order.CreatedAt, now, cfg.WarningAfterMin, cfg.UrgentAfterMin),
			models.ProgressPercent(order.Status),
			utils.FormatCurrency(order.GrandTotal),
		)
	}
}

// renderLoop redraws until SIGINT/SIGTERM.
func renderLoop(cfg config.Config, render func()) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	render()
	for {
		select {
		case <-ticker.C:
			fmt.Println("----")
			render()
		case <-stop:
			utils.InfoLogger.Println("Shutting down")
			return
		}
	}
}
