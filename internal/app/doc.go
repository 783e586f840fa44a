// Package app provides the main application logic for archiving Bandcamp releases.
// It initializes the necessary components, such as the feed client, page renderer,
// and output store, and orchestrates the archiving run.
package app
