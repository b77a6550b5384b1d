package application

import (
	"flag"
	"log"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/AcroManiac/bmc-sensor-monitor/internal/infrastructure/logger"
)

// Init application with configuration file. Flags registered through the
// standard library "flag" package before this call are picked up as well
func Init(defaultConfigPath string) {
	flag.String("config", defaultConfigPath, "path to configuration file")

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	_ = viper.BindPFlags(pflag.CommandLine)

	// Reading configuration from file
	configFile := viper.GetString("config") // retrieve value from viper
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Couldn't read configuration file: %s", err.Error())
	}

	// Setting log parameters
	logger.Init(
		viper.GetString("log.log_level"),
		viper.GetString("log.log_file"),
		viper.GetBool("log.log_rotate"))
}
