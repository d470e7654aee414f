// Package config provides configuration management for rosterfill.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Files: tabular I/O settings (encoding candidates, delimiter, export format, output suffix)
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Files.Format)
package config
