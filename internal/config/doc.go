// Package config provides the configuration for lookupbot.
// It defines the lookup API endpoint, the chat bot's behaviour and the
// logging preferences, and loads them from defaults, a YAML file and the
// environment, in that order.
package config
