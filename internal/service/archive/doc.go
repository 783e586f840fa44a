// Package archive provides the core functionality for archiving Bandcamp releases.
// It walks each account's release feed, resolves release pages into metadata and
// artwork, and acquires the audio through whichever path the release offers:
// a direct free download, an email-gated checkout, or nothing at all.
package archive
