package main

import (
	"fmt"
	"log"
	"os"

	"medishare-client/internal/api"
	"medishare-client/internal/cart"
	"medishare-client/internal/chat"
	"medishare-client/internal/checkout"
	"medishare-client/internal/config"
	"medishare-client/internal/equipment"
	"medishare-client/internal/favorites"
	"medishare-client/internal/logger"
	"medishare-client/internal/requests"
	"medishare-client/internal/session"
	"medishare-client/internal/user"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	sessions := session.NewStore(cfg.StateDir)
	client := api.NewClient(cfg.APIBaseURL, sessions, api.WithTimeout(cfg.HTTPTimeout))

	cartStore := cart.NewFileStore(cfg.StateDir)
	equipmentSvc := equipment.NewService(client, cfg.AssetBaseURL)
	userSvc := user.NewService(client)
	chatSvc := chat.NewService(client)

	app := &app{
		session:   sessions,
		cart:      cart.NewService(cartStore),
		equipment: equipmentSvc,
		favorites: favorites.NewService(client),
		chat:      chatSvc,
		users:     userSvc,
		requests:  requests.NewManager(requests.NewService(client)),
		checkout:  checkout.NewFlow(client, cartStore, userSvc),
		messenger: checkout.NewMessenger(chatSvc),
	}

	if err := app.run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		log.Fatalf("command failed: %v", err)
	}
}
