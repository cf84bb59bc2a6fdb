// Package discord connects a bot.Bot to Discord through discordgo.
//
// Client implements bot.Messenger and bot.Platform. Messages are drawn as a
// single embed; message actions become primary buttons. Inbound messages
// from other bots, including this one, are dropped before they reach the
// orchestrator.
//
// Button presses are acknowledged with a deferred update so Discord does
// not report the interaction as failed while the export is rendered.
package discord
