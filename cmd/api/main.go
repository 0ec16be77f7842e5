package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/Flarenzy/subnetter/docs"
	"github.com/Flarenzy/subnetter/internal/app"
)

//	@title			Subnetter API
//	@version		1.0
//	@description	Splits an IPv4 network into equal subnets sized for a minimum host count.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:4040
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
