// Package config loads the YAML configuration for Message Center clients.
//
// Values of the form ${VAR} are expanded from the environment before
// parsing, so secrets can stay out of the file:
//
//	oauth:
//	  consumer_key: ${UPWORK_CONSUMER_KEY}
//	  consumer_secret: ${UPWORK_CONSUMER_SECRET}
package config
