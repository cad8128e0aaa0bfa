// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package visibility

import (
	"time"

	"github.com/danielhkuo/premios/models"
)

// RecentWindow is how far back a publish date still counts as recent.
const RecentWindow = 24 * time.Hour

// IsRecent reports whether q was published within the window ending at now.
// Both ends are inclusive; a future pub_date is never recent.
func IsRecent(q models.Question, now time.Time) bool {
	return !q.PubDate.Before(now.Add(-RecentWindow)) && !q.PubDate.After(now)
}

// IsPublished reports whether q is visible at now.
func IsPublished(q models.Question, now time.Time) bool {
	return !q.PubDate.After(now)
}
