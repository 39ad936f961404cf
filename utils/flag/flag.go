/*
flag Package set up cli flags shared across services

Usage:

	Flags listed in this package are shared across boundaries and service-agnostic
	For service dependent flags please define in their respective package

	Call ParseFlags from main before reading any flag value. Registration
	happens at init so defaults are usable immediately, but parsing must not
	run at init: test binaries register their own flags after package init,
	and an early Parse would reject them.
*/

package flag

import (
	"flag"
)

const (
	APIServer = "api_server"
)

var (
	IsDevelopment  bool
	ServiceName    string
	AppSettingPath string
)

func init() {
	flag.BoolVar(&IsDevelopment, "dev", true, "set to true if the current run is for development. default value is true")
	flag.StringVar(&ServiceName, "service", APIServer, "name of the service to run")
	flag.StringVar(&AppSettingPath, "app_setting", "", "path to the yaml app setting file, empty means built-in defaults")
}

// ParseFlags parses the command line once. Safe to call when another layer
// (for example the testing framework) has parsed already.
func ParseFlags() {
	if !flag.Parsed() {
		flag.Parse()
	}
}
