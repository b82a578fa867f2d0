// SPDX-License-Identifier: Apache-2.0

package store

const (
	createSessionTable = `
		CREATE TABLE IF NOT EXISTS session (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		);`

	upsertSessionValue = `
		INSERT INTO session (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;`

	getSessionValue = `
		SELECT value
		FROM session
		WHERE key = $1;`

	deleteSessionValues = `
		DELETE FROM session
		WHERE key IN ($1, $2);`
)

// Keys of the two session entries.
const (
	sessionKeyForm     = "intake_form"
	sessionKeyCaptures = "captures"
)
