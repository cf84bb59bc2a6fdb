// Package main provides the entry point for the lookupbot CLI.
//
// lookupbot is a Discord bot that looks up Indian mobile numbers through a
// third-party API and presents the records it returns.
//
// Usage:
//
//	lookupbot run
//	lookupbot lookup 9876543210
//
// See --help for all available options.
package main

// main is the entry point for lookupbot.
func main() {
	Execute()
}
