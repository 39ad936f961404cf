package dotenv

import (
	"os"
	"regexp"

	"github.com/joho/godotenv"
)

// Load loads the .env file following the convention: https://github.com/bkeepers/dotenv#what-other-env-files-can-i-use
// It only need to be called once in main function, other code can use env through os.Getenv('ENV_NAME') during runtime
func LoadDotEnvs() error {
	// check whether running in development, testing, production etc.
	loadDotEnvs("")
	return nil
}

func loadDotEnvs(rootPath string) {
	env := os.Getenv("CARDBASE_ENV")
	if env == "" {
		env = "dev"
	}

	// .env.[runtime_env].local has highest priority, usually contains username and password and other sensitive information
	godotenv.Load(rootPath + ".env." + env + ".local")
	godotenv.Load(rootPath + ".env.local")
	// .env.[runtime_env] usually contains db connection information
	godotenv.Load(rootPath + ".env." + env)
	// .env usually contains shared variables(which might be overwritten by envs above)
	godotenv.Load(rootPath + ".env")
}

// Have to write this helper function due to a known issue of godotenv
// https://github.com/joho/godotenv/issues/43
//
// The path detection assumes the checkout directory is named after the
// module. Set CARDBASE_ROOT to the repo root when the workspace is named
// differently.
func LoadDotEnvsInTests() error {
	rootPath := os.Getenv("CARDBASE_ROOT")
	if rootPath == "" {
		re := regexp.MustCompile(`^(.*cardbase)`)
		cwd, _ := os.Getwd()
		rootPath = string(re.Find([]byte(cwd)))
	}

	godotenv.Load(rootPath + "/" + ".env.test")
	return nil
}

const (
	DevEnv  = "dev"
	TestEnv = "test"
	ProdEnv = "prod"
)
