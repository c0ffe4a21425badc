// Package slugstore backs slug.Unique with shared storage.
//
// A slug generated by one process must not be handed out by another, so the
// uniqueness check has to ask the place where slugs are persisted. The package
// provides slug.ExistsFunc implementations for Redis sets and PostgreSQL
// columns, plus connection helpers configured from the environment.
//
// # Usage
//
//	client, err := slugstore.ConnectRedis(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	set, err := slugstore.NewRedisSet(client, "tenants:slugs")
//
//	// Claim atomically reserves the candidate it reports free.
//	s, err := slug.Unique(ctx, "Acme Inc.", set.Claim)
//
//	// Against an existing table:
//	col, err := slugstore.NewPostgresColumn(pool, "articles", "slug")
//	s, err := slug.Unique(ctx, title, col.Exists)
//
// Exists only reads, so two callers can race for the same free candidate; a
// unique index on the column closes that gap. IsDuplicateSlug recognizes the
// resulting constraint violation so the caller can retry.
package slugstore
