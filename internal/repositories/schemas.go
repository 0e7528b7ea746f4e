package repositories

import "cleanmatch_backend/internal/query"

// Collection schemas. These are the only columns reachable through the
// filtered access layer; accounts deliberately omits password_hash.
var (
	AccountSchema = query.NewSchema("accounts",
		"id", "created_at", "updated_at", "name", "email", "account_type",
		"status", "rates", "bio", "location", "services_offered", "average_rating",
	)

	JobSchema = query.NewSchema("jobs",
		"id", "created_at", "updated_at", "cleaner_id", "homeowner_id",
		"service", "location", "date", "status", "rating",
	)

	AvailabilitySchema = query.NewSchema("availability_slots",
		"id", "created_at", "updated_at", "cleaner_id", "service", "date",
	)

	FavoriteSchema = query.NewSchema("favorites",
		"id", "created_at", "updated_at", "cleaner_id", "user_id",
	)

	ViewSchema = query.NewSchema("cleaner_views",
		"id", "created_at", "updated_at", "cleaner_id", "viewer_id", "viewed_at",
	)

	ReportSchema = query.NewSchema("job_reports",
		"id", "created_at", "updated_at", "job_id", "reporter_id", "reason", "reported_at",
	)
)
