package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"

	"bandcamp-archiver/internal/config"
	"bandcamp-archiver/internal/logger"
)

const (
	// browserSlowMotionDelay is the delay between browser actions for visibility during debugging.
	browserSlowMotionDelay = 200 * time.Millisecond

	// browserCleanupDelay gives Chrome a moment to release profile file locks before removal.
	browserCleanupDelay = 500 * time.Millisecond

	// downloadFlowTimeout caps how long to wait for the download link mutation.
	downloadFlowTimeout = 2 * time.Minute
)

// readTralbumDataJS serializes the page-exposed release data object, or null
// when the release has been delisted.
const readTralbumDataJS = `() => window.TralbumData || null`

// simulateDownloadFlowJS opens the format selector, picks the entry whose
// description matches the requested format, and resolves with the direct
// link once the download anchor's href mutates.
const simulateDownloadFlowJS = `(format) => new Promise(resolve => {
	try { document.querySelector('.item-format.button').click(); } catch (err) {}
	const options = Array.from(document.querySelectorAll('ul > li > span.description'));
	const option = options.find(e => e.innerText === format);
	if (option) option.click();
	const anchor = document.querySelector('.download-title > a');
	const observer = new MutationObserver(() => {
		resolve(document.querySelector('.download-title > a').href);
	});
	observer.observe(anchor, { attributes: true, attributeFilter: ['href'] });
})`

// simulateEmailCheckoutJS drives the zero-price checkout: price is set to
// 0.00, the buttons section is revealed, and the checkout is submitted with
// the given email and postal code. The pause lets the page react to the
// price change before the buttons are usable.
const simulateEmailCheckoutJS = `async (email, postalCode) => {
	TralbumDownload.begin();
	const userPrice = document.getElementById('userPrice');
	userPrice.value = '0.00';
	userPrice.dispatchEvent(new Event('change', { bubbles: true }));
	await new Promise(resolve => setTimeout(resolve, 2500));
	try { TralbumDownload.showButtonsSection(); } catch (err) {}
	document.getElementById('fan_email_address').value = email;
	document.getElementById('fan_email_postalcode').value = postalCode;
	TralbumDownload.checkout();
}`

// RodRenderer implements Renderer on top of a rod-controlled browser.
// One browser, one stealth page, reused serially for the whole run.
type RodRenderer struct {
	// browser is the rod browser instance.
	browser *rod.Browser
	// page is the single active page.
	page *rod.Page
	// tempDir is the throwaway profile directory.
	tempDir string
}

// NewRodRenderer launches a browser and opens the single page used for the
// whole run. Headless mode follows the configuration.
func NewRodRenderer(ctx context.Context, cfg *config.Config) (*RodRenderer, error) {
	logger.Debug(ctx, "Initializing browser")

	// A throwaway profile avoids session persistence between runs.
	tempDir, err := os.MkdirTemp("", "bandcamp-archiver-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary user data directory: %w", err)
	}

	browserLauncher := launcher.New().
		Headless(cfg.Headless).
		UserDataDir(tempDir)

	// Prefer a system Chrome; fall back to downloading Chromium.
	if chromePath, exists := launcher.LookPath(); exists {
		logger.Debugf(ctx, "Using system Chrome installation at: %s", chromePath)
		browserLauncher = browserLauncher.Bin(chromePath)
	} else {
		logger.Debug(ctx, "System Chrome not found, downloading Chromium")
	}

	launcherURL := browserLauncher.MustLaunch()
	logger.Debugf(ctx, "Browser launched at: %s", launcherURL)

	browserInstance := rod.New().ControlURL(launcherURL)

	if logger.IsDebugLevel() {
		browserInstance = browserInstance.
			Trace(true).
			SlowMotion(browserSlowMotionDelay)
	}

	browser := browserInstance.MustConnect()

	// The stealth page keeps Bandcamp from treating the session as a bot.
	page := stealth.MustPage(browser)

	logger.Debug(ctx, "Browser initialized successfully with stealth mode")

	return &RodRenderer{
		browser: browser,
		page:    page,
		tempDir: tempDir,
	}, nil
}

// Navigate loads the given URL in the active page and waits for it to load.
func (r *RodRenderer) Navigate(ctx context.Context, url string) error {
	page := r.page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %q: %w", url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("failed to load %q: %w", url, err)
	}

	return nil
}

// ReadTralbumData reads the page-exposed release data object as raw JSON.
func (r *RodRenderer) ReadTralbumData(ctx context.Context) (json.RawMessage, error) {
	eval, err := r.page.Context(ctx).Eval(readTralbumDataJS)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate release data: %w", err)
	}

	if eval.Value.Nil() {
		return nil, ErrReleaseDataMissing
	}

	raw, err := json.Marshal(eval.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize release data: %w", err)
	}

	return raw, nil
}

// SimulateDownloadFlow drives the download dialog and returns the direct link.
func (r *RodRenderer) SimulateDownloadFlow(ctx context.Context, format DownloadFormat) (string, error) {
	page := r.page.Context(ctx).Timeout(downloadFlowTimeout)

	eval, err := page.Eval(simulateDownloadFlowJS, string(format))
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		return "", fmt.Errorf("%w: %w", ErrDownloadLinkTimeout, err)
	}

	return eval.Value.Str(), nil
}

// SimulateEmailCheckout drives the zero-price checkout with the given
// email address and postal code.
func (r *RodRenderer) SimulateEmailCheckout(ctx context.Context, email, postalCode string) error {
	if _, err := r.page.Context(ctx).Eval(simulateEmailCheckoutJS, email, postalCode); err != nil {
		return fmt.Errorf("failed to drive email checkout: %w", err)
	}

	return nil
}

// Close shuts down the browser and removes the throwaway profile.
func (r *RodRenderer) Close(ctx context.Context) {
	if r.browser != nil {
		if err := r.browser.Close(); err != nil {
			logger.Debugf(ctx, "Browser close error (expected): %v", err)
		}
	}

	if r.tempDir != "" {
		time.Sleep(browserCleanupDelay)

		if err := os.RemoveAll(r.tempDir); err != nil {
			// Chrome may not have fully exited yet; not critical.
			logger.Debugf(ctx, "Could not clean up temp directory %s: %v", r.tempDir, err)
		}
	}
}
