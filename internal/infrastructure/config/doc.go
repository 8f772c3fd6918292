// Package config handles loading and validating attctl configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of required fields
//   - Default value handling
//
// The configuration file is optional: when attctl runs without one, the
// built-in defaults apply (ACM interface filter, 1 s query timeout, CRLF
// line termination), which match the factory settings of the supported
// attenuator units.
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Serial.Match)
package config
