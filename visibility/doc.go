// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package visibility decides which questions a visitor may see.

# Policy

A question is published once its pub_date is not after the current
instant, and recent when its pub_date lies in the 24 hours ending now:

	visibility.IsPublished(q, now) // q.PubDate <= now
	visibility.IsRecent(q, now)    // now-24h <= q.PubDate <= now

# Filtering

ListVisible and GetVisibleOrNotFound work on an in-memory slice. Filter
runs the same rules over a QuestionRepository:

	f := visibility.NewFilter(store)
	latest, err := f.Latest(ctx, time.Now())
	q, err := f.Visible(ctx, id, time.Now())

Visible returns ErrNotFound both for missing ids and for questions
scheduled in the future, so unpublished questions cannot be probed.

The current instant is always passed in. Nothing in this package reads
the clock.
*/
package visibility
