package archive

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"bandcamp-archiver/internal/logger"
)

// RunStatistics accumulates counters over a whole archiving run. All methods
// are safe for concurrent use.
type RunStatistics struct {
	mu sync.Mutex

	accountsProcessed   int64
	accountsFailed      int64
	releasesResolved    int64
	releasesFailed      int64
	artworkSaved        int64
	freeDownloadsSaved  int64
	emailLinksRequested int64
	paidSkipped         int64
	unresolvable        int64
	bytesDownloaded     int64

	startedAt time.Time
}

// NewRunStatistics creates run statistics with the clock started.
func NewRunStatistics() *RunStatistics {
	return &RunStatistics{startedAt: time.Now()}
}

// RecordAccount counts one account, failed or not.
func (rs *RunStatistics) RecordAccount(failed bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.accountsProcessed++
	if failed {
		rs.accountsFailed++
	}
}

// RecordResolveFailure counts a release whose page could not be resolved.
func (rs *RunStatistics) RecordResolveFailure() {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.releasesFailed++
}

// RecordResolved counts a resolved release and its persisted artwork.
func (rs *RunStatistics) RecordResolved(result *ResolveResult) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.releasesResolved++
	rs.artworkSaved += result.ArtworkSaved
	rs.bytesDownloaded += result.BytesDownloaded
}

// RecordAcquisition counts the terminal outcome of one release.
func (rs *RunStatistics) RecordAcquisition(result *AcquisitionResult) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	switch result.Outcome {
	case OutcomeFreeDownload:
		rs.freeDownloadsSaved++
		rs.bytesDownloaded += result.BytesDownloaded
	case OutcomeEmailGated:
		rs.emailLinksRequested++
	case OutcomePaid:
		rs.paidSkipped++
	case OutcomeUnresolvable:
		rs.unresolvable++
	}
}

// PrintSummary logs the run totals.
func (rs *RunStatistics) PrintSummary(ctx context.Context) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	logger.Infof(ctx, "Run finished in %s", formatDuration(time.Since(rs.startedAt)))
	logger.Infof(ctx, "Accounts processed: %d (%d failed)", rs.accountsProcessed, rs.accountsFailed)
	logger.Infof(ctx, "Releases resolved: %d (%d failed)", rs.releasesResolved, rs.releasesFailed)
	logger.Infof(ctx, "Artwork files saved: %d", rs.artworkSaved)
	logger.Infof(ctx, "Free downloads saved: %d", rs.freeDownloadsSaved)
	logger.Infof(ctx, "Email links requested: %d", rs.emailLinksRequested)
	logger.Infof(ctx, "Paid releases skipped: %d", rs.paidSkipped)
	logger.Infof(ctx, "Unresolvable releases: %d", rs.unresolvable)
	logger.Infof(ctx, "Total downloaded: %s", humanize.Bytes(uint64(rs.bytesDownloaded)))
}

// formatDuration renders a duration as hours, minutes, and seconds, dropping
// leading zero components.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	seconds := d - minutes*time.Minute

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, int64(seconds.Seconds()))
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, int64(seconds.Seconds()))
	default:
		return fmt.Sprintf("%ds", int64(seconds.Seconds()))
	}
}
