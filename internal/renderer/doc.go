// Package renderer abstracts the browser-automation capability the pipeline
// needs: navigating to release pages, reading script-exposed data objects,
// and driving in-page download and checkout flows. The only shipped backend
// is rod-controlled Chrome/Chromium.
package renderer
