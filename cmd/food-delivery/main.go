package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"

	"food-delivery/internal/common/logger"
	"food-delivery/internal/config"
	"food-delivery/internal/domain"
	"food-delivery/internal/service"
	"food-delivery/internal/store"
	"food-delivery/internal/view"
)

func main() {
	cfgPath := flag.String("config", "", "path to config.yaml (default: search candidates)")
	dataDir := flag.String("data", "", "override the data folder from the config")
	flag.Parse()

	lg := logger.New("bootstrap")

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Data.Folder = *dataDir
	}

	st := store.NewFileDataStore(cfg.Data.Folder)
	if err := st.Init(); err != nil {
		lg.Error("fatal", err, map[string]any{"folder": cfg.Data.Folder})
		os.Exit(1)
	}
	lg.Info("store_loaded", map[string]any{
		"folder":    cfg.Data.Folder,
		"customers": len(st.Customers()),
		"foods":     len(st.Foods()),
	})

	svc := service.NewDeliveryService(st, lg.WithService("delivery-service"))
	v := view.NewConsoleView(os.Stdin, os.Stdout)

	if err := runSession(svc, v); err != nil {
		lg.Error("session_failed", err, nil)
	}

	if err := st.WriteOrders(); err != nil {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}
	lg.Info("orders_flushed", map[string]any{"orders": len(st.Orders())})
}

// loadConfig falls back to defaults when no config file exists and none
// was asked for explicitly.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		found, err := config.FindConfig()
		if errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		path = found
	}
	return config.Load(path)
}

// runSession drives one customer session: authenticate, browse, fill the
// cart, confirm the order. Business rules live in the service; this loop
// only routes input and output.
func runSession(svc service.DeliveryServiceInterface, v view.View) error {
	var customer *domain.Customer
	for customer == nil {
		creds := v.ReadCredentials()
		if creds.UserName == "" && creds.Password == "" {
			// blank login: the user gave up or stdin closed
			return nil
		}
		c, err := svc.Authenticate(creds)
		if err != nil {
			v.PrintErrorMessage(err.Error())
			continue
		}
		customer = c
	}
	v.PrintWelcomeMessage(customer)

	foods := svc.ListAllFood()
	v.PrintAllFoods(foods)

	for {
		selection := v.ReadFoodSelection(foods)
		if selection.Done {
			break
		}
		if err := svc.UpdateCart(customer, selection.Food, selection.Pieces); err != nil {
			v.PrintErrorMessage(err.Error())
			continue
		}
		v.PrintAddedToCart(selection.Food, selection.Pieces)
	}

	order, err := svc.CreateOrder(customer)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			v.PrintErrorMessage(err.Error())
			return nil
		}
		return err
	}
	v.PrintOrderCreatedStatement(order, customer.Balance)
	return nil
}
