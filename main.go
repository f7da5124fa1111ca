package main

import (
	"fmt"

	"nullbyte/account-api/app"
	"nullbyte/account-api/config"
	"nullbyte/account-api/db"
	"nullbyte/account-api/internal"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	err := config.Setup()
	if err != nil {
		panic(err)
	}

	conn, err := db.New()
	if err != nil {
		panic(err)
	}

	r := app.NewRouter(internal.NewDeps(conn))

	zap.L().Info("Server starting")

	err = r.Run(fmt.Sprintf(":%d", viper.GetInt("host.port")))
	if err != nil {
		panic(err)
	}
}
