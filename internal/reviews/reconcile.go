// Package reviews merges a shopper's not-yet-confirmed reviews with the list
// the server returned.
package reviews

import (
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	"github.com/google/uuid"
)

// Merged is the outcome of Reconcile.
type Merged struct {
	// Reviews is what to show: still-pending local entries first, then the
	// server snapshot.
	Reviews []models.Review
	// Pending is the local entries the server has not confirmed yet.
	Pending []models.Review
	// Promoted lists the ids the server now knows about.
	Promoted []uuid.UUID
}

// Reconcile merges pending local reviews with a server snapshot, keyed by id.
// Server rows always win. A pending review whose id appears in the snapshot is
// promoted and leaves the pending set; duplicate ids within either list keep
// their first occurrence.
func Reconcile(pending, server []models.Review) Merged {
	seen := make(map[uuid.UUID]bool, len(server))
	serverRows := make([]models.Review, 0, len(server))

	for _, r := range server {
		if seen[r.ID] {
			continue
		}

		seen[r.ID] = true
		serverRows = append(serverRows, r)
	}

	var out Merged

	local := make(map[uuid.UUID]bool, len(pending))

	for _, r := range pending {
		if local[r.ID] {
			continue
		}

		local[r.ID] = true

		if seen[r.ID] {
			out.Promoted = append(out.Promoted, r.ID)

			continue
		}

		out.Pending = append(out.Pending, r)
	}

	out.Reviews = make([]models.Review, 0, len(out.Pending)+len(serverRows))
	out.Reviews = append(out.Reviews, out.Pending...)
	out.Reviews = append(out.Reviews, serverRows...)

	return out
}
