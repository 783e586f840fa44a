package feed

// Feed is one account's change feed as served by the rss-bridge endpoint.
type Feed struct {
	// Items lists the feed entries, newest first, as delivered by the bridge.
	Items []Item `json:"items"`
}

// Item is a single feed entry referencing one release by URL.
type Item struct {
	// URL is the release page URL.
	URL string `json:"url"`
	// Title is the release title as shown in the feed.
	Title string `json:"title"`
	// Author is the feed-supplied author name, when present.
	Author string `json:"author,omitempty"`
	// Content is the feed-supplied HTML snippet, when present.
	Content string `json:"content_html,omitempty"`
}
