package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	_ "github.com/virtlabs/labnet/docs"
	"github.com/virtlabs/labnet/internal/app"
)

//	@title			Labnet Address Allocator API
//	@version		1.0
//	@description	Claims subnets out of configured address space for test
//	@description	environments and hands out host addresses inside them.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:4040
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := app.LoadConfig()

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
