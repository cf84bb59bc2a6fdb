// Package present turns search outcomes into chat messages.
//
// Messages are platform-neutral values (title, description, fields, colour,
// footer, actions). The chat adapter decides how to draw them; the discord
// package renders them as embeds with buttons.
//
// The package also produces export payloads. An export is shown inline when
// the rendered document fits within the inline limit (2000 characters by
// default) and is sent as a file attachment otherwise.
//
// Timestamps in footers are shown in Indian Standard Time. When the zone
// database is unavailable the presenter falls back to UTC.
package present
