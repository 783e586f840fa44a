package bandcamp

// TrackPageData is the slice of the pagedata blob this pipeline needs.
// Track pages expose more, but only the artwork identifier is consumed.
type TrackPageData struct {
	// ArtID is the numeric artwork identifier; nil when the track has no artwork.
	ArtID *int64 `json:"art_id"`
}
