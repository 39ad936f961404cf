package main

import (
	"github.com/avolkov/cardbase/app_setting"
	"github.com/avolkov/cardbase/server"
	"github.com/avolkov/cardbase/utils"
	"github.com/avolkov/cardbase/utils/dotenv"
	. "github.com/avolkov/cardbase/utils/flag"
	. "github.com/avolkov/cardbase/utils/log"
)

func main() {
	ParseFlags()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}
	InitLogger()

	setting := app_setting.DefaultServerAppSetting()
	if AppSettingPath != "" {
		setting = app_setting.ParseServerAppSetting(AppSettingPath)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Log.Fatal("fail to connect to database: ", err)
	}
	utils.DatabaseSetupAndMigration(db)

	router := server.NewRouter(db, setting)

	Log.Info("api server starts up")
	router.Run(setting.SERVER_ADDR)
}
