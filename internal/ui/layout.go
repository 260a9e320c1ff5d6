package ui

import "time"

// Fixed rows around the card viewport: header, filter, two pager rows, footer.
const chromeHeight = 5

// LayoutCompactWidth is the threshold below which compact labels are used.
const LayoutCompactWidth = 80

// maxDots caps the paginator dots; beyond it only "Page X of Y" is shown.
const maxDots = 20

// DefaultPollTick is how often the UI checks the store while the startup
// fetch is still running.
const DefaultPollTick = 100 * time.Millisecond
