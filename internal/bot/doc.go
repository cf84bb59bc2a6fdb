// Package bot implements the command orchestrator.
//
// A Bot receives inbound chat messages and button actions from a chat
// adapter and drives each search through a fixed lifecycle:
//
//	validate → placeholder → lookup → {failure | no records | results}
//
// Every invocation is independent. The chat adapter may call HandleMessage
// and HandleAction from many goroutines at once; the only shared state is
// the Metrics counter and the store of exportable result sets, and both are
// safe for concurrent use.
//
// The Bot never talks to the chat platform directly. It depends on the
// Messenger and Platform interfaces, which keeps it testable with fakes and
// lets the same orchestrator serve any adapter.
package bot
