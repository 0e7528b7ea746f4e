package contextkeys

// Custom type avoids collisions with other context keys.
type contextKey string

// DBContextKey holds the *gorm.DB (pool or transaction) in gin context.
const DBContextKey = contextKey("db")

// ActorContextKey holds the acting account id supplied by the boundary.
const ActorContextKey = contextKey("actor_id")
