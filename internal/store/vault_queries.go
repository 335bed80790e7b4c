// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/enpass-cli/models"
)

const selectIdentity = `
	SELECT
		id,
		version,
		signature,
		sync_uuid,
		hash,
		info
	FROM Identity;`

// buildCardsQuery assembles the card SELECT for the given filter. The
// ordering (title, then trashed, then deleted) is the order the pipeline
// emits results in, so it is fixed here rather than left to the caller.
func buildCardsQuery(filter models.CardFilter) (string, []any, error) {
	query := sq.Select(
		"id",
		"uuid",
		"title",
		"subtitle",
		"deleted",
		"trashed",
		"type",
		"category",
		"data",
	).
		From("Cards").
		OrderBy("title", "trashed", "deleted")

	if filter.Category != "" {
		query = query.Where(sq.Eq{"category": filter.Category})
	}
	if !filter.IncludeTrashed {
		query = query.Where(sq.Eq{"trashed": 0})
	}
	if !filter.IncludeDeleted {
		query = query.Where(sq.Eq{"deleted": 0})
	}

	return query.ToSql()
}
